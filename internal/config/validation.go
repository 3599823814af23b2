package config

import (
	"slices"
	"strings"
)

// Validate checks the merged configuration. It returns a
// *ValidationErrors collecting every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.CrateName) == "" {
		errs = append(errs, ValidationError{
			Field:   "crate_name",
			Message: "must not be empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	for _, lang := range cfg.Languages {
		if !slices.Contains(SupportedLanguages, lang) {
			errs = append(errs, ValidationError{
				Field:   "languages",
				Message: "must be one of: " + strings.Join(SupportedLanguages, ", "),
				Value:   lang,
				Wrapped: ErrUnknownLanguage,
			})
		}
	}

	if cfg.LogLevel != "" {
		validLevels := []string{"debug", "info", "warn", "error"}
		if !slices.Contains(validLevels, cfg.LogLevel) {
			errs = append(errs, ValidationError{
				Field:   "log_level",
				Message: "must be one of: " + strings.Join(validLevels, ", "),
				Value:   cfg.LogLevel,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
