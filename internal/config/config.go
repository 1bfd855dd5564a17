// Package config seeds flag defaults from the environment. A .env file in
// the working directory is honored when present; explicit flags always win.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"rhisto/internal/errors"
)

// Config holds environment-provided defaults for the CLI flags.
type Config struct {
	Column    int
	Delim     string
	NumBins   int
	Precision int
}

// Load reads configuration from the environment, loading .env first if one
// exists.
func Load() (*Config, error) {
	// missing .env is the normal case
	_ = godotenv.Load()

	config := &Config{
		Column:    getEnvIntOrDefault("RHISTO_COLUMN", 1),
		Delim:     getEnvOrDefault("RHISTO_DELIM", ","),
		NumBins:   getEnvIntOrDefault("RHISTO_NUM_BINS", 10),
		Precision: getEnvIntOrDefault("RHISTO_PRECISION", 2),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Column < 1 {
		return errors.ConfigInvalid("RHISTO_COLUMN must be at least 1")
	}
	if config.Delim == "" {
		return errors.ConfigInvalid("RHISTO_DELIM must not be empty")
	}
	if config.NumBins < 1 {
		return errors.ConfigInvalid("RHISTO_NUM_BINS must be positive")
	}
	if config.Precision < 0 {
		return errors.ConfigInvalid("RHISTO_PRECISION must not be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
