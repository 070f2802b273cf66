package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf}).Named("poller.activity")

	logger.InfoContext(context.Background(), "cycle published", "gameweek", 7, "cycle_id", "abc", "error", errors.New("boom"))

	var record map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("decode log record: %v (raw=%s)", err, buf.String())
	}
	if record["msg"] != "cycle published" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["component"] != "poller.activity" {
		t.Fatalf("unexpected component: %v", record["component"])
	}
	if got, _ := record["gameweek"].(float64); got != 7 {
		t.Fatalf("unexpected gameweek field: %v", record["gameweek"])
	}
	if record["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", record["error"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn record missing: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic on nil receiver")
	if logger.With("k", "v") == nil {
		t.Fatalf("With on nil logger must return a usable logger")
	}
}
