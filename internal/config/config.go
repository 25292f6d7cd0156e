package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of raw rows shown per "see more" answer
const DefaultPageSize = 5

// Config holds all configuration for the explorer
type Config struct {
	// Directory holding chicago.csv, new_york_city.csv and washington.csv
	DataDir string

	// Raw data browsing
	PageSize int

	// Diagnostics
	Verbose bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	cfg := &Config{
		DataDir:  getEnv("BIKESHARE_DATA_DIR", "."),
		PageSize: getEnvInt("BIKESHARE_PAGE_SIZE", DefaultPageSize),
		Verbose:  getEnvBool("BIKESHARE_VERBOSE", false),
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
