package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	applog "budget/internal/log"
)

// Echo modes for mirroring consumed input lines to stdout.
const (
	EchoAuto   = "auto"
	EchoAlways = "always"
	EchoNever  = "never"
)

// Config holds the process settings. None of them change amounts or the
// report layout; they only affect diagnostics and transcript echo.
type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Input
	EchoInput string
}

func Load() *Config {
	return &Config{
		LogLevel:  getEnv("BUDGET_LOG_LEVEL", "warn"),
		LogFormat: getEnv("BUDGET_LOG_FORMAT", "text"),
		EchoInput: getEnv("BUDGET_ECHO_INPUT", EchoAuto),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, ok := applog.ParseLevel(c.LogLevel); !ok {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	validFormats := []string{"text", "json"}
	if !slices.Contains(validFormats, strings.ToLower(c.LogFormat)) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	validEcho := []string{EchoAuto, EchoAlways, EchoNever}
	if !slices.Contains(validEcho, strings.ToLower(c.EchoInput)) {
		errors = append(errors, fmt.Sprintf("invalid echo mode '%s': must be one of %v", c.EchoInput, validEcho))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ShouldEcho resolves the echo mode. interactive reports whether stdin is a terminal.
func (c *Config) ShouldEcho(interactive bool) bool {
	switch strings.ToLower(c.EchoInput) {
	case EchoAlways:
		return true
	case EchoNever:
		return false
	default:
		return !interactive
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
