package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v\n%s", err, buf.String())
	}
	return entry
}

func TestZerologAdapter_Info(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "bench")
	logger.Info("run finished",
		String("technique", "iterative"),
		Int("rank", 1),
		Uint64("steps", 125000),
		Float64("rate", 1250000.5),
		Dur("elapsed", 100*time.Millisecond),
	)

	entry := decodeLine(t, &buf)
	if entry["message"] != "run finished" {
		t.Errorf("message = %v, want 'run finished'", entry["message"])
	}
	if entry["component"] != "bench" {
		t.Errorf("component = %v, want bench", entry["component"])
	}
	if entry["technique"] != "iterative" {
		t.Errorf("technique = %v, want iterative", entry["technique"])
	}
	if entry["steps"] != float64(125000) {
		t.Errorf("steps = %v, want 125000", entry["steps"])
	}
	if entry["elapsed"] != "100ms" {
		t.Errorf("elapsed = %v, want 100ms", entry["elapsed"])
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "bench")
	logger.Error("instantiation failed", errors.New("missing backend"),
		String("technique", "gmp"))

	entry := decodeLine(t, &buf)
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["error"] != "missing backend" {
		t.Errorf("error = %v, want 'missing backend'", entry["error"])
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	// Must be safe to call with any arguments.
	var logger Logger = NopLogger{}
	logger.Info("ignored", String("k", "v"))
	logger.Error("ignored", errors.New("e"))
	logger.Debug("ignored")
}
