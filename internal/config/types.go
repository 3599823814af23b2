package config

// Config is the root configuration for the binding generator, loaded
// from .mepassa/bindgen.yaml. Zero values fall back to compiled defaults.
type Config struct {
	// CrateName is the uniffi crate name passed to the generator.
	CrateName string `yaml:"crate_name"`

	// Languages lists the binding targets to generate.
	Languages []string `yaml:"languages"`

	// Paths overrides the fixed workspace layout.
	Paths PathsConfig `yaml:"paths"`

	// Tools selects the external executables to drive.
	Tools ToolsConfig `yaml:"tools"`

	// ConfigOverride is an optional uniffi.toml passed through to the
	// generator. Empty means the generator's own discovery applies.
	ConfigOverride string `yaml:"config_override"`

	// TimeoutSeconds bounds each subprocess invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`

	// NonInteractive suppresses spinners and prompts.
	NonInteractive bool `yaml:"non_interactive"`

	// LogLevel controls diagnostic logging: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// PathsConfig overrides individual workspace paths. Relative paths are
// interpreted against the working directory.
type PathsConfig struct {
	ProjectRoot string `yaml:"project_root"`
	CoreDir     string `yaml:"core_dir"`
	UDL         string `yaml:"udl"`
	Library     string `yaml:"library"`
	OutDir      string `yaml:"out_dir"`
}

// ToolsConfig selects the generator executables.
type ToolsConfig struct {
	UniffiBin string `yaml:"uniffi_bin"`
	CargoBin  string `yaml:"cargo_bin"`
}
