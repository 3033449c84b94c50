package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "WARNING", slog.LevelWarn},
		{"error", "Error", slog.LevelError},
		{"empty defaults to info", "", slog.LevelInfo},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"whitespace trimmed", "  debug  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test-module", "v0.0.1", "debug")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled")
	}

	logger = NewStructuredLogger("test-module", "v0.0.1", "error")
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected warn level to be disabled at error level")
	}
}

func TestNewLogLogger(t *testing.T) {
	l := NewLogLogger(slog.LevelInfo)
	if l == nil {
		t.Fatal("expected non-nil log.Logger")
	}
}
