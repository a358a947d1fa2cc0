// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings.
type Config struct {
	// APIURL is the base URL of the raid service.
	APIURL string `env:"PULSE_API_URL" envDefault:"https://api.pulseguard.fit"`

	// UserID overrides the host-supplied identity when set.
	UserID int64 `env:"PULSE_USER_ID"`

	// Username overrides the host-supplied display name when set.
	Username string `env:"PULSE_USERNAME"`

	// PollInterval is the raid refresh cadence while on the main screen.
	PollInterval time.Duration `env:"PULSE_POLL_INTERVAL" envDefault:"3s"`

	// Haptics disables terminal feedback when false.
	Haptics bool `env:"PULSE_HAPTICS" envDefault:"true"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}
	return cfg, nil
}
