package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestJSONLogger_Format tests the line-delimited JSON output shape
func TestJSONLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("run complete", Algorithm("dijkstra"), Steps(7))

	var got entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Output is not valid JSON: %v (%s)", err, buf.String())
	}
	if got.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", got.Level)
	}
	if got.Message != "run complete" {
		t.Errorf("Expected message 'run complete', got %q", got.Message)
	}
	if got.Fields["algorithm"] != "dijkstra" {
		t.Errorf("Expected algorithm field, got %v", got.Fields)
	}
	if got.Fields["steps"] != float64(7) {
		t.Errorf("Expected steps field 7, got %v", got.Fields["steps"])
	}
}

// TestJSONLogger_LevelFiltering tests that lines below the minimum level
// are suppressed
func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("kept")
	logger.Error("kept")

	lines := strings.Count(buf.String(), "\n")
	if lines != 2 {
		t.Errorf("Expected 2 log lines, got %d: %s", lines, buf.String())
	}
}

// TestJSONLogger_With tests that preset fields flow into child logger lines
func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(RunID("abc-123"))
	child.Info("stored")

	var got entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if got.Fields["run_id"] != "abc-123" {
		t.Errorf("Expected preset run_id field, got %v", got.Fields)
	}
}

// TestParseLevel_Values tests the accepted spellings
func TestParseLevel_Values(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"ERROR":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
