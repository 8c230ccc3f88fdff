// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all runtime settings
type Config struct {
	// Storage selects the backend: memory, redis or sqlite
	Storage string `env:"VIERBURE_STORAGE" envDefault:"sqlite"`
	// Profile namespaces saved data so several scoreboards can share a backend
	Profile string `env:"VIERBURE_PROFILE" envDefault:"default"`

	RedisURL   string        `env:"VIERBURE_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisTTL   time.Duration `env:"VIERBURE_REDIS_TTL" envDefault:"0s"`
	SQLitePath string        `env:"VIERBURE_SQLITE_PATH"`

	// Auto-save debounce
	SaveDelay   time.Duration `env:"VIERBURE_SAVE_DELAY" envDefault:"500ms"`
	SaveTimeout time.Duration `env:"VIERBURE_SAVE_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"VIERBURE_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"VIERBURE_LOG_FORMAT" envDefault:"text"`

	// Output is the CLI output format: text or json
	Output string `env:"VIERBURE_OUTPUT" envDefault:"text"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath()
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("invalid storage %q: must be memory, redis or sqlite", c.Storage)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output %q: must be text or json", c.Output)
	}
	if c.Profile == "" {
		return fmt.Errorf("profile must not be empty")
	}
	return nil
}
