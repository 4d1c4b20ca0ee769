package config

// DefaultConfig returns the built-in configuration used when no config file
// is supplied. The skip lists cover the stack-managed policies and restored
// or internal indices that routinely pollute reports.
func DefaultConfig() *Config {
	return &Config{
		Skip: Skip{
			Policies: []string{"metrics", "elastic-agent-ilm", "kibana-event-log-policy"},
			Indices:  []string{"partial", "internal"},
		},
		Display: Display{
			MaxReasonLength:      80,
			TopErrorsPerCategory: 10,
		},
	}
}
