package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "defaults",
			config:  Config{LogLevel: "warn", LogFormat: "text", EchoInput: EchoAuto},
			wantErr: false,
		},
		{
			name:    "json debug always",
			config:  Config{LogLevel: "DEBUG", LogFormat: "JSON", EchoInput: "always"},
			wantErr: false,
		},
		{
			name:        "invalid log level",
			config:      Config{LogLevel: "verbose", LogFormat: "text", EchoInput: EchoAuto},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "invalid log format",
			config:      Config{LogLevel: "info", LogFormat: "xml", EchoInput: EchoAuto},
			wantErr:     true,
			errorString: "invalid log format 'xml': must be one of [text json]",
		},
		{
			name:        "invalid echo mode",
			config:      Config{LogLevel: "info", LogFormat: "text", EchoInput: "sometimes"},
			wantErr:     true,
			errorString: "invalid echo mode 'sometimes': must be one of [auto always never]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateAggregatesErrors(t *testing.T) {
	cfg := Config{LogLevel: "x", LogFormat: "y", EchoInput: "z"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 3 {
		t.Fatalf("expected 3 aggregated errors, got %d: %v", n, err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BUDGET_LOG_LEVEL", "")
		t.Setenv("BUDGET_LOG_FORMAT", "")
		t.Setenv("BUDGET_ECHO_INPUT", "")

		cfg := Load()
		if cfg.LogLevel != "warn" || cfg.LogFormat != "text" || cfg.EchoInput != EchoAuto {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("BUDGET_LOG_LEVEL", "debug")
		t.Setenv("BUDGET_LOG_FORMAT", "json")
		t.Setenv("BUDGET_ECHO_INPUT", "never")

		cfg := Load()
		if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.EchoInput != EchoNever {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})
}

func TestConfig_ShouldEcho(t *testing.T) {
	cases := []struct {
		mode        string
		interactive bool
		want        bool
	}{
		{EchoAuto, true, false},
		{EchoAuto, false, true},
		{EchoAlways, true, true},
		{EchoNever, false, false},
	}
	for _, tc := range cases {
		cfg := Config{EchoInput: tc.mode}
		if got := cfg.ShouldEcho(tc.interactive); got != tc.want {
			t.Fatalf("ShouldEcho(%s, %v) = %v, want %v", tc.mode, tc.interactive, got, tc.want)
		}
	}
}
