package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Backend selection: "file" or "sqlite"
	Backend string

	// File backend
	DataFile string

	// SQLite backend
	SQLitePath string

	// Defaults applied at record creation
	DefaultCurrency string

	// Logging
	LogFile  string
	LogLevel string
}

func Load() *Config {
	return &Config{
		Backend:         getEnv("TRACKER_BACKEND", "file"),
		DataFile:        getEnv("TRACKER_DATA_FILE", "data/expenses.json"),
		SQLitePath:      getEnv("TRACKER_SQLITE_PATH", "data/tracker.db"),
		DefaultCurrency: getEnv("TRACKER_DEFAULT_CURRENCY", "BDT"),
		LogFile:         getEnv("TRACKER_LOG_FILE", "logs/tracker.log"),
		LogLevel:        getEnv("TRACKER_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"file", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	switch c.Backend {
	case "file":
		if c.DataFile == "" {
			errors = append(errors, "data file path cannot be empty when using file backend")
		} else if err := ensureDir(c.DataFile); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create data directory for '%s': %v", c.DataFile, err))
		}
	case "sqlite":
		if c.SQLitePath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureDir(c.SQLitePath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create SQLite database directory for '%s': %v", c.SQLitePath, err))
		}
	}

	if strings.TrimSpace(c.DefaultCurrency) == "" {
		errors = append(errors, "default currency cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured level string onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
