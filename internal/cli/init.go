// Package cli provides common CLI initialization utilities.
// It gathers the bootstrap steps of cmd/budget: environment loading,
// configuration, logging, terminal detection and signal handling.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"budget/internal/config"
	applog "budget/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(applog.ComponentConfig).Error("Configuration validation failed",
			applog.FieldOperation, applog.OpValidate,
			applog.FieldError, err,
			applog.FieldErrorType, applog.ErrorTypeConfiguration)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger builds the diagnostics logger from cfg and makes it the
// default slog logger. Output goes to stderr.
func SetupLogger(cfg *config.Config) *applog.Logger {
	lc := applog.DefaultConfig()
	if level, ok := applog.ParseLevel(cfg.LogLevel); ok {
		lc.Level = level
	}
	lc.Format = cfg.LogFormat

	logger := applog.New(lc)
	applog.SetDefault(logger)
	return logger
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
// The prompt loop observes it between reads.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
