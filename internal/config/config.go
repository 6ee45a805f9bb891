// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the settings the service depends on.
// Database connection parameters are read separately by the db package.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	// ActivationCodeTTL bounds how long an emailed code stays valid.
	ActivationCodeTTL time.Duration `env:"ACTIVATION_CODE_TTL" envDefault:"1m"`

	// EmailFrom is the sender address on activation emails.
	EmailFrom string `env:"EMAIL_FROM" envDefault:"no-reply@localhost"`

	// EmailProviderMode selects the notifier: "http" for the provider API,
	// anything else falls back to the console client.
	EmailProviderMode    string        `env:"EMAIL_PROVIDER_MODE" envDefault:"console"`
	EmailProviderBaseURL string        `env:"EMAIL_PROVIDER_BASE_URL"`
	EmailProviderTimeout time.Duration `env:"EMAIL_PROVIDER_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present in the working directory.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}

	if cfg.EmailProviderMode == "http" && cfg.EmailProviderBaseURL == "" {
		return nil, fmt.Errorf("EMAIL_PROVIDER_BASE_URL is required when EMAIL_PROVIDER_MODE=http")
	}

	return &cfg, nil
}
