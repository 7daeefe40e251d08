// Package config provides settings loading and environment lookups.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables understood by the binaries.
const (
	EnvConfigPath = "SPACEBLASTER_CONFIG"
	EnvLogLevel   = "SPACEBLASTER_LOG_LEVEL"
	EnvLogFile    = "SPACEBLASTER_LOG_FILE"
	EnvSeed       = "SPACEBLASTER_SEED"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 is GetEnv for integer variables. A set but malformed value is an error.
func GetEnvInt64(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
