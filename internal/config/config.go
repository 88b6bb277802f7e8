// Package config loads the funalg CLI configuration from a YAML file.
// The library core takes no configuration at all; everything here only
// shapes the REPL and eval surfaces.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the user's home directory when no
// --config flag is given.
const DefaultFileName = ".funalg.yaml"

// Config is the funalg.yaml configuration.
type Config struct {
	// Space is the ambient space tag for the REPL, e.g. "3D" or
	// "cl(3,1)". Results are widened into the union of their own tag
	// and the ambient space before display. Empty means no widening.
	Space string `yaml:"space,omitempty"`

	// Precision is the number of fractional digits for norms and
	// scalar projections printed by the REPL. Values render with full
	// precision regardless.
	Precision int `yaml:"precision,omitempty"`

	// Color controls ANSI output: "auto" (default, on when stdout is
	// a terminal), "always" or "never".
	Color string `yaml:"color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Precision: 4, Color: "auto"}
}

// Load reads a configuration file. An empty path falls back to
// $HOME/.funalg.yaml; a missing file is not an error and yields the
// defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("invalid precision %d", c.Precision)
	}
	return nil
}
