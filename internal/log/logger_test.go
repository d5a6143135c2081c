package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Output: &buf, Component: ComponentApp})

	logger.WithComponent(ComponentInput).Debug("rejected", FieldPrompt, "Rent")

	out := buf.String()
	if !strings.Contains(out, "component=input") {
		t.Fatalf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "prompt=Rent") {
		t.Fatalf("expected prompt field, got %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Output: &buf, Component: ComponentBudget})

	logger.Info("computed", NewFields().WithBudget(100, 40, 60, "under_budget").ToSlice()...)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"saving":60`) || !strings.Contains(out, `"component":"budget"`) {
		t.Fatalf("missing fields in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level")
	}
}

func TestLogFieldsWithError(t *testing.T) {
	f := NewFields().WithError(nil)
	if _, ok := f[FieldError]; ok {
		t.Fatal("nil error should not add a field")
	}
	f.WithError(errors.New("boom")).WithOperation(OpCollect).WithErrorType(ErrorTypeCanceled)
	if f[FieldError] != "boom" || f[FieldOperation] != OpCollect || f[FieldErrorType] != ErrorTypeCanceled {
		t.Fatalf("unexpected fields %v", f)
	}
}
