package config

// Config is the analyzer configuration document.
//
// Only name-skip rules and display bounds are configurable. Health and
// recommendation thresholds are fixed contracts of the engine and do not
// appear here.
type Config struct {
	Skip    Skip    `yaml:"skip"`
	Display Display `yaml:"display"`
}

// Skip holds the ordered name patterns excluded from analysis. Matching is
// case-insensitive substring matching, evaluated in list order.
type Skip struct {
	Policies []string `yaml:"policies" validate:"omitempty,dive,skip_pattern"`
	Indices  []string `yaml:"indices" validate:"omitempty,dive,skip_pattern"`
}

// Display bounds how much detail rendered reports surface.
type Display struct {
	MaxReasonLength      int `yaml:"max_reason_length" validate:"min=10,max=500"`
	TopErrorsPerCategory int `yaml:"top_errors_per_category" validate:"min=1,max=100"`
}
