// Package config loads run configuration from YAML files, layered over the
// built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sliceforge/cakecut/internal/gcode"
	"github.com/sliceforge/cakecut/internal/model"
)

// Config describes one planning run: the problem, the solver knobs and the
// output machinery.
type Config struct {
	CakeWidth  float64   `yaml:"cake_width"`
	CakeLength float64   `yaml:"cake_length"`
	Tolerance  float64   `yaml:"tolerance"`
	Requests   []float64 `yaml:"requests"`

	Settings model.Settings `yaml:"settings"`
	GCode    gcode.Settings `yaml:"gcode"`

	// Listen is the bind address of the solve service.
	Listen string `yaml:"listen"`
}

// Default returns a config with every knob at its built-in default and no
// problem defined.
func Default() Config {
	return Config{
		CakeWidth:  100,
		CakeLength: 100,
		Tolerance:  5,
		Settings:   model.DefaultSettings(),
		GCode:      gcode.DefaultSettings(),
		Listen:     ":8080",
	}
}

// Load reads a YAML config file over the defaults, so a file only needs to
// name the knobs it changes.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the problem dimensions and knobs for obvious mistakes.
func (c Config) Validate() error {
	if c.CakeWidth <= 0 || c.CakeLength <= 0 {
		return fmt.Errorf("cake dimensions must be positive, got %gx%g", c.CakeWidth, c.CakeLength)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %g", c.Tolerance)
	}
	for i, r := range c.Requests {
		if r <= 0 {
			return fmt.Errorf("request %d must be positive, got %g", i, r)
		}
	}
	if c.Settings.CoarseGranularity < 2 || c.Settings.FineGranularity < 2 {
		return fmt.Errorf("granularity must be at least 2")
	}
	return nil
}
