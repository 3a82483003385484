// Package config loads game settings from ROGUE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"bsp-roguelike/internal/generate"
)

// Config carries every tunable of a run.
type Config struct {
	Width           int     `env:"ROGUE_WIDTH" envDefault:"100"`
	Height          int     `env:"ROGUE_HEIGHT" envDefault:"100"`
	Items           int     `env:"ROGUE_ITEMS" envDefault:"10"`
	Mobs            int     `env:"ROGUE_MOBS" envDefault:"10"`
	DropProbability float64 `env:"ROGUE_DROP_PROBABILITY" envDefault:"0.5"`
	HealOnLevelUp   bool    `env:"ROGUE_HEAL_ON_LEVEL_UP" envDefault:"false"`
	PotionHeal      int     `env:"ROGUE_POTION_HEAL" envDefault:"10"`
	Seed            int64   `env:"ROGUE_SEED" envDefault:"0"` // 0 picks a random seed
	MapMode         string  `env:"ROGUE_MAP_MODE" envDefault:"bsp"`
	Locale          string  `env:"ROGUE_LOCALE" envDefault:"en"`
	LogLevel        string  `env:"ROGUE_LOG_LEVEL" envDefault:"info"`

	// LogFile receives the structured log while the terminal UI owns the
	// screen. Empty discards it.
	LogFile string `env:"ROGUE_LOG_FILE"`
}

// Default returns the built-in settings without reading the environment.
func Default() Config {
	return Config{
		Width:           100,
		Height:          100,
		Items:           10,
		Mobs:            10,
		DropProbability: 0.5,
		PotionHeal:      10,
		MapMode:         "bsp",
		Locale:          "en",
		LogLevel:        "info",
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Items < 0 {
		errs = append(errs, fmt.Errorf("item count %d must not be negative", c.Items))
	}
	if c.Mobs < 0 {
		errs = append(errs, fmt.Errorf("mob count %d must not be negative", c.Mobs))
	}
	if c.DropProbability < 0 || c.DropProbability > 1 {
		errs = append(errs, fmt.Errorf("drop probability %v outside [0,1]", c.DropProbability))
	}
	if c.PotionHeal < 0 {
		errs = append(errs, fmt.Errorf("potion heal %d must not be negative", c.PotionHeal))
	}
	if _, err := generate.ParseMode(c.MapMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Mode returns the parsed map mode. Call Validate first.
func (c Config) Mode() generate.Mode {
	m, _ := generate.ParseMode(c.MapMode)
	return m
}

// ParseLogLevel maps a level name onto slog.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}
