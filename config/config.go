// Package config loads launcher settings from the environment
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Color modes accepted by SNAKE_COLOR
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds runtime settings that are not part of the simulation rules
type Config struct {
	Debug  bool    `env:"SNAKE_DEBUG"`
	Seed   uint64  `env:"SNAKE_SEED"`
	Mute   bool    `env:"SNAKE_MUTE"`
	Volume float64 `env:"SNAKE_VOLUME" envDefault:"0.5"`
	Color  string  `env:"SNAKE_COLOR" envDefault:"auto"`
	LogDir string  `env:"SNAKE_LOG_DIR" envDefault:"logs"`
}

// Load parses the environment into a Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges env tags cannot express
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorTrueColor, Color256)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0,1]", c.Volume)
	}
	return nil
}
