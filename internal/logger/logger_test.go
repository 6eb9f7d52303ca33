//nolint:testpackage // Testing level parsing requires same package access
package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Helper()

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Helper()

	log, err := New(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Debug("constructed", String("check", "ok"))

	withFields := log.With(String("component", "test"))
	if withFields == nil {
		t.Fatal("With returned nil")
	}
}

func TestNop(t *testing.T) {
	t.Helper()

	log := NewNop()
	log.Info("ignored")
	if err := log.Sync(); err != nil {
		t.Errorf("nop sync: %v", err)
	}
	if log.With(String("a", "b")) == nil {
		t.Error("nop With returned nil")
	}
}
