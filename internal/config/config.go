// Package config loads the backprop CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all backprop configuration.
type Config struct {
	// Inputs of the squared error example: loss = (w*x - y)**2
	Inputs InputsConfig `yaml:"inputs"`

	// Numerical gradient check
	GradCheck GradCheckConfig `yaml:"gradcheck"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig holds the example's leaf values.
type InputsConfig struct {
	W float64 `yaml:"w"` // trainable weight
	X float64 `yaml:"x"` // input
	Y float64 `yaml:"y"` // target
}

// GradCheckConfig configures the finite difference check.
type GradCheckConfig struct {
	Epsilon   float64 `yaml:"epsilon"`
	Tolerance float64 `yaml:"tolerance"`
	Workers   int     `yaml:"workers"` // 0 = NumCPU
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			W: 1.0,
			X: 1.0,
			Y: 2.0,
		},
		GradCheck: GradCheckConfig{
			Epsilon:   1e-6,
			Tolerance: 1e-4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
// Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !(c.GradCheck.Epsilon > 0) {
		return fmt.Errorf("%w: gradcheck.epsilon must be positive, got %g", ErrInvalid, c.GradCheck.Epsilon)
	}
	if !(c.GradCheck.Tolerance > 0) {
		return fmt.Errorf("%w: gradcheck.tolerance must be positive, got %g", ErrInvalid, c.GradCheck.Tolerance)
	}
	if c.GradCheck.Workers < 0 {
		return fmt.Errorf("%w: gradcheck.workers must not be negative, got %d", ErrInvalid, c.GradCheck.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
