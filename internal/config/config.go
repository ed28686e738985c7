package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration read from the environment.
type Config struct {
	Port      int    `env:"LOUCURA_PORT" envDefault:"8080"`
	Seed      uint64 `env:"LOUCURA_SEED"`
	LogDev    bool   `env:"LOUCURA_LOG_DEV"`
	MaxRounds int    `env:"LOUCURA_MAX_ROUNDS" envDefault:"10"`
	LogLimit  int    `env:"LOUCURA_LOG_LIMIT" envDefault:"20"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config and checks its values.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.MaxRounds < 1 {
		return Config{}, fmt.Errorf("max rounds must be positive, got %d", cfg.MaxRounds)
	}
	if cfg.LogLimit < 1 {
		return Config{}, fmt.Errorf("log limit must be positive, got %d", cfg.LogLimit)
	}
	return cfg, nil
}
