// internal/config/config.go
//
// Environment-driven configuration.
// Variables are parsed with caarlos0/env; main loads an optional .env
// file first (godotenv), so values from the real environment win.
//
// Environment variables:
//   LOG_LEVEL=warn               zerolog level
//   LOG_FORMAT=console           console | json
//   NUMGUESS_MIN=1               inclusive lower bound
//   NUMGUESS_MAX=100             inclusive upper bound
//   NUMGUESS_MAX_ATTEMPTS=10     guesses per round
//   NUMGUESS_HINTS=true          initial hints toggle
//   NUMGUESS_SEED=0              non-zero → reproducible targets
//   NUMGUESS_DAILY=false         number-of-the-day mode
//   DAILY_SALT=local_dev_salt    salt for the daily seed
//   NUMGUESS_STATS=sqlite        sqlite | memory
//   STATUS_ADDR=                 status server address; empty disables it

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/numguess/internal/game"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	StatsSQLite = "sqlite"
	StatsMemory = "memory"
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	Min         int    `env:"NUMGUESS_MIN" envDefault:"1"`
	Max         int    `env:"NUMGUESS_MAX" envDefault:"100"`
	MaxAttempts int    `env:"NUMGUESS_MAX_ATTEMPTS" envDefault:"10"`
	Hints       bool   `env:"NUMGUESS_HINTS" envDefault:"true"`
	Seed        uint64 `env:"NUMGUESS_SEED" envDefault:"0"`
	Daily       bool   `env:"NUMGUESS_DAILY" envDefault:"false"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	Stats      string `env:"NUMGUESS_STATS" envDefault:"sqlite"`
	StatusAddr string `env:"STATUS_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
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

// Validate rejects settings the game cannot start with.
func (c Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("config: %w", &game.InvalidRangeError{Min: c.Min, Max: c.Max})
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("config: %w", game.ErrInvalidMaxAttempts)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	switch c.Stats {
	case StatsSQLite, StatsMemory:
	default:
		return fmt.Errorf("config: unknown NUMGUESS_STATS %q", c.Stats)
	}
	return nil
}
