// Package cli wires configuration, logging and the storage backend
// together and dispatches the five expense subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"tracker/internal/config"
	"tracker/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger initializes structured logging against the configured log
// file and sets it as the default logger. Operations log through this;
// a logging problem never fails an operation.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(log.Config{
		Level:     cfg.SlogLevel(),
		Component: "tracker",
		Handler:   log.FileHandler(cfg.LogFile, cfg.SlogLevel()),
	})
	log.SetDefault(logger)
	return logger
}
