package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	ilmerrors "github.com/mikecalizo/ilm-parser-collections/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Patterns are matched lowercased, so the config must supply them in
	// canonical lowercase form.
	skipPatternRegex = regexp.MustCompile(`^[a-z0-9._-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("skip_pattern", func(fl validator.FieldLevel) bool {
			return skipPatternRegex.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ilmerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := checkDuplicates("skip.policies", cfg.Skip.Policies); err != nil {
		return err
	}
	if err := checkDuplicates("skip.indices", cfg.Skip.Indices); err != nil {
		return err
	}

	return nil
}

func checkDuplicates(field string, patterns []string) error {
	seen := make(map[string]int, len(patterns))
	for i, pattern := range patterns {
		if prev, exists := seen[pattern]; exists {
			msg := fmt.Sprintf("duplicate pattern %q (first at index %d)", pattern, prev)
			return ilmerrors.NewValidationError(fmt.Sprintf("%s[%d]", field, i), msg, nil)
		}
		seen[pattern] = i
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return ilmerrors.NewValidationError(field, msg, err)
	}

	return ilmerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName renders a validator namespace the way the field appears in
// the YAML document, e.g. "skip.indices[2]" rather than "Config.Skip.Indices[2]".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
