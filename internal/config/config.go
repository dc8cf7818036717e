// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration
type Config struct {
	// Host and Port for the admin HTTP API
	Host string `env:"TEAMBOT_HOST" envDefault:""`
	Port int    `env:"TEAMBOT_PORT" envDefault:"8080"`

	// LogLevel is the slog level (debug, info, warn, error)
	LogLevel slog.Level `env:"TEAMBOT_LOG_LEVEL" envDefault:"info"`

	// HostRoleName overrides the role display name that designates hosts
	HostRoleName string `env:"TEAMBOT_HOST_ROLE_NAME" envDefault:"Host"`

	// DevGuild, when set, seeds the local gateway with a guild carrying
	// a Host role so the service is usable without a platform connection
	DevGuild string `env:"TEAMBOT_DEV_GUILD"`
	// DevHostUser is granted the seeded guild's Host role
	DevHostUser string `env:"TEAMBOT_DEV_HOST_USER"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
