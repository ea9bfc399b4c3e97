// Package config handles YAML configuration parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fittracker/internal/data"
	"fittracker/internal/training"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the root configuration structure.
type Config struct {
	Packages []training.Reading `yaml:"packages"`
	Input    *InputConfig       `yaml:"input,omitempty"`
	Output   string             `yaml:"output"`
	Replay   ReplayConfig       `yaml:"replay,omitempty"`

	// Dir is the directory relative input paths are resolved against.
	Dir string `yaml:"-"`
}

// InputConfig points at a file with more readings.
type InputConfig struct {
	Path   string `yaml:"path"`
	Select string `yaml:"select,omitempty"` // JSONPath to the readings array
}

// ReplayConfig paces processing.
type ReplayConfig struct {
	Rate float64 `yaml:"rate"` // readings per second, 0 = as fast as possible
}

// Default returns the built-in demonstration batch.
func Default() *Config {
	return &Config{
		Packages: []training.Reading{
			{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			{Type: "RUN", Data: []float64{15000, 1, 75}},
			{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		},
		Output: OutputText,
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	cfg.Dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
// Readings themselves are checked by the tracker, one by one.
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if c.Replay.Rate < 0 {
		return fmt.Errorf("replay rate must be >= 0, got %v", c.Replay.Rate)
	}
	if c.Input != nil && c.Input.Path == "" {
		return fmt.Errorf("input.path is required when input is set")
	}
	return nil
}

// Readings returns the inline packages followed by those from the input file.
func (c *Config) Readings() ([]training.Reading, error) {
	readings := make([]training.Reading, 0, len(c.Packages))
	readings = append(readings, c.Packages...)

	if c.Input != nil {
		loaded, err := data.LoadFile(c.Input.Path, c.Input.Select, c.Dir)
		if err != nil {
			return nil, err
		}
		readings = append(readings, loaded...)
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("no readings: set packages or input")
	}
	return readings, nil
}
