package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds the runtime configuration, populated from the environment.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the configuration from environment variables.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}
