package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mepassa/mepassa-bindgen/internal/defs"
)

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "MEPASSA_BINDGEN_CONFIG"

// Path returns the configuration file path for the given project root,
// honoring the MEPASSA_BINDGEN_CONFIG environment variable override.
func Path(projectRoot string) string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return filepath.Clean(env)
	}
	return filepath.Join(filepath.Clean(projectRoot), defs.MepassaDir, defs.BindgenYAML)
}

// Load reads the configuration file for projectRoot, merges compiled
// defaults under file values, and validates the result. A missing file
// is not an error: defaults apply.
func Load(projectRoot string) (*Config, error) {
	return LoadFile(Path(projectRoot))
}

// LoadFile reads a specific configuration file. A missing file yields
// the compiled defaults.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file: defaults only.
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the configuration file under projectRoot, creating
// the .mepassa directory if needed.
func Save(projectRoot string, cfg *Config) error {
	path := Path(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
