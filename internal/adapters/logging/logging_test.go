package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"", zapcore.WarnLevel, zapcore.InfoLevel},
		{"bogus", zapcore.WarnLevel, zapcore.InfoLevel},
		{"ERROR", zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, test := range tests {
		logger := New(Config{Level: test.level})
		if !logger.Core().Enabled(test.enabled) {
			t.Fatalf("level %q: expected %s enabled", test.level, test.enabled)
		}
		if logger.Core().Enabled(test.muted) {
			t.Fatalf("level %q: expected %s disabled", test.level, test.muted)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	logger := New(Config{Level: "error", Format: "json", UTC: true})
	if logger == nil {
		t.Fatalf("expected logger")
	}
	logger.Debug("dropped")
}

func TestBuildVersion(t *testing.T) {
	version, commit := buildVersion()
	if version == "" || commit == "" {
		t.Fatalf("expected non-empty build info, got %q %q", version, commit)
	}
}
