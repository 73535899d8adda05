package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr          string        `env:"ANIMOCHI_ADDR" envDefault:":8080"`
	DBDSN         string        `env:"ANIMOCHI_DB_DSN"`
	MigrationsDir string        `env:"ANIMOCHI_MIGRATIONS_DIR" envDefault:"./migrations"`
	TickInterval  time.Duration `env:"ANIMOCHI_TICK_INTERVAL" envDefault:"0"`
	QuestValidity time.Duration `env:"ANIMOCHI_QUEST_VALIDITY" envDefault:"24h"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
