// Package config loads runtime settings from the environment. Command line
// flags are layered on top by the CLI.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// Store selects the persistence backend
type Store string

// Stores
const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
	StoreSQLite Store = "sqlite"
)

// Config is every setting the game reads at startup
type Config struct {
	Store      Store         `env:"BUG_ARENA_STORE" envDefault:"memory"`
	RedisAddr  string        `env:"BUG_ARENA_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string        `env:"BUG_ARENA_SQLITE_PATH" envDefault:"bug-arena.db"`
	PlayerID   string        `env:"BUG_ARENA_PLAYER_ID"`
	LogLevel   string        `env:"BUG_ARENA_LOG_LEVEL" envDefault:"info"`
	BattleTTL  time.Duration `env:"BUG_ARENA_BATTLE_TTL" envDefault:"15m"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the settings that the chosen store needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", string(c.Store),
		[]string{string(StoreMemory), string(StoreRedis), string(StoreSQLite)}, vb)
	if c.Store == StoreRedis {
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	}
	if c.Store == StoreSQLite {
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}
	if c.BattleTTL <= 0 {
		vb.Field("battle_ttl", "must be positive")
	}
	return vb.Build()
}

// Anonymous reports whether play is not tied to a stored player. Anonymous
// sessions always use memory storage.
func (c *Config) Anonymous() bool {
	return strings.TrimSpace(c.PlayerID) == ""
}

// SlogLevel returns the configured log level, info when invalid
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel maps a level name to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}
