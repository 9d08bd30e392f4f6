// Package config handles sunvec configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/echoflaresat/sunvec/earth"
)

// Output formats accepted by OutputConfig.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Model         string        `yaml:"model"`
	CacheSize     int           `yaml:"cache_size"`
	Workers       int           `yaml:"workers"`
	LightDistance float64       `yaml:"light_distance"` // scene units, for render.LightPosition
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model:         "almanac",
		CacheSize:     4096,
		Workers:       4,
		LightDistance: 100,
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := earth.LookupModel(c.Model); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output format %q (want text, json or yaml)", ErrInvalidConfig, c.Output.Format)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: cache_size must be positive, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if !(c.LightDistance > 0) {
		return fmt.Errorf("%w: light_distance must be positive, got %g", ErrInvalidConfig, c.LightDistance)
	}
	return nil
}
