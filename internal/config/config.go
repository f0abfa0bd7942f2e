// Package config resolves client configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the environment-driven configuration of the CLI. Flags override
// these values per invocation.
type Config struct {
	// APIURL is the backend base endpoint, including the version prefix.
	APIURL string `env:"NUTRIAI_API_URL" envDefault:"http://localhost:8000/api/v1"`
	// Timeout bounds every backend call.
	Timeout time.Duration `env:"NUTRIAI_TIMEOUT" envDefault:"10s"`
	// DBPath overrides the default credential store location.
	DBPath string `env:"NUTRIAI_DB"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("NUTRIAI_API_URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("NUTRIAI_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
