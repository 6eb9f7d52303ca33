//nolint:testpackage // Testing the unexported pair conversion requires same package access
package logging

import (
	"testing"

	"github.com/jonesrussell/sotd-matcher/internal/logger"
)

func TestToFields(t *testing.T) {
	t.Helper()

	tests := []struct {
		name string
		in   []any
		want int
	}{
		{"pairs", []any{"a", 1, "b", "two"}, 2},
		{"odd trailing key dropped", []any{"a", 1, "dangling"}, 1},
		{"non-string key skipped", []any{42, "value", "b", 2}, 1},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toFields(tt.in); len(got) != tt.want {
				t.Errorf("got %d fields, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAdapter_DoesNotPanic(t *testing.T) {
	t.Helper()

	a := NewAdapter(logger.NewNop())
	a.Debug("d", "k", "v")
	a.Info("i", "k", 1)
	a.Warn("w")
	a.Error("e", "err", "boom", "odd")
}
