package config

import "github.com/mepassa/mepassa-bindgen/internal/defs"

// SupportedLanguages are the binding targets uniffi-bindgen can emit.
var SupportedLanguages = []string{"swift", "kotlin", "python", "ruby"}

// DefaultTimeoutSeconds bounds a single generator subprocess. The cargo
// fallback compiles the uniffi CLI on first use, which can take minutes.
const DefaultTimeoutSeconds = 600

// Default returns the compiled default configuration.
func Default() *Config {
	return &Config{
		CrateName: "mepassa",
		Languages: []string{"swift"},
		Tools: ToolsConfig{
			UniffiBin: defs.UniffiBin,
			CargoBin:  defs.CargoBin,
		},
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       "warn",
	}
}

// applyDefaults fills zero-valued fields of cfg from the compiled defaults.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.CrateName == "" {
		cfg.CrateName = def.CrateName
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = def.Languages
	}
	if cfg.Tools.UniffiBin == "" {
		cfg.Tools.UniffiBin = def.Tools.UniffiBin
	}
	if cfg.Tools.CargoBin == "" {
		cfg.Tools.CargoBin = def.Tools.CargoBin
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = def.TimeoutSeconds
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}
