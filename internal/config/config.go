package config

import (
	"os"
	"strconv"

	"launchdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Archive ArchiveConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	// File is the tabular launch dataset (.csv or .xlsx) loaded at startup.
	File string
	// Demo generates a seeded synthetic dataset instead of reading File.
	Demo        bool
	DemoRecords int
}

// ArchiveConfig holds the load-snapshot database settings
type ArchiveConfig struct {
	// Path to the sqlite archive; empty disables snapshot recording.
	Path string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("LAUNCHDASH_PORT", "8080"),
		},
		Data: DataConfig{
			File:        getEnvOrDefault("LAUNCHDASH_DATA_FILE", "spacex_launch_dash.csv"),
			Demo:        getEnvBoolOrDefault("LAUNCHDASH_DEMO", false),
			DemoRecords: getEnvIntOrDefault("LAUNCHDASH_DEMO_RECORDS", 120),
		},
		Archive: ArchiveConfig{
			Path: getEnvOrDefault("LAUNCHDASH_ARCHIVE_DB", "launchdash.db"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if !config.Data.Demo && config.Data.File == "" {
		return errors.ConfigInvalid("a data file is required unless demo mode is enabled")
	}
	if config.Data.Demo && config.Data.DemoRecords <= 0 {
		return errors.ConfigInvalid("demo record count must be positive")
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
