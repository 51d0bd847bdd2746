package utils

import (
	"errors"
	"strings"
	"testing"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

// TestCloseWithLog_ErrorPath verifies that CloseWithLog does not panic when
// the underlying Close returns an error.
func TestCloseWithLog_ErrorPath(t *testing.T) {
	CloseWithLog(failingCloser{})
}

func TestJSONToString_Compact(t *testing.T) {
	got := JSONToString(map[string]int{"a": 1})
	if got != `{"a":1}` {
		t.Errorf("expected compact JSON, got %q", got)
	}
}

func TestJSONToString_Indented(t *testing.T) {
	got := JSONToString(map[string]int{"a": 1}, true)
	if !strings.Contains(got, "\n  \"a\": 1") {
		t.Errorf("expected two-space indented JSON, got %q", got)
	}
}

func TestJSONToString_MarshalFailure(t *testing.T) {
	got := JSONToString(func() {})
	if !strings.Contains(got, "failed to marshal") {
		t.Errorf("expected error string, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello... (truncated, total: 11 chars)"},
		{"zero limit uses default", "short", 0, "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
