package util

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level       string
		debugOn     bool
		infoEnabled bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"bogus", false, true},
	}
	ctx := context.Background()
	for _, tt := range tests {
		logger := NewLogger(tt.level, "json")
		if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.debugOn {
			t.Errorf("NewLogger(%q): debug enabled = %v, want %v", tt.level, got, tt.debugOn)
		}
		if got := logger.Enabled(ctx, slog.LevelInfo); got != tt.infoEnabled {
			t.Errorf("NewLogger(%q): info enabled = %v, want %v", tt.level, got, tt.infoEnabled)
		}
	}
}

func TestNewLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		if logger := NewLogger("info", format); logger == nil {
			t.Errorf("NewLogger(info, %q) = nil", format)
		}
	}
}
