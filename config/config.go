// Package config loads tool defaults from a .env file and the process
// environment. CLI flags take precedence over everything here.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Format is the default output format name (png, pam or webp).
	Format string
	// Display overrides $DISPLAY when non-empty.
	Display string
	// EnableFileLogging routes debug logs to a rotated file instead of
	// stderr.
	EnableFileLogging bool
}

// Load reads configuration from sources in priority order:
// 1) .env in the executable's directory
// 2) if not found, the file named by the XSHOT_ENV env var
// then the process environment itself.
func Load() (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Format:            getEnvWithDefault("XSHOT_FORMAT", "png"),
		Display:           os.Getenv("XSHOT_DISPLAY"),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
	}
	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv("XSHOT_ENV"); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
