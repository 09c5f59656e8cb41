package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestNewJSON_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, WithOutput(&buf), WithService("fantacalcio", "test"))

	logger.Info("player assigned", "player_id", "rossi_inter", "price", 12, "error", errors.New("boom"))
	logger.Debug("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := sonic.UnmarshalString(lines[0], &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["msg"] != "player assigned" || entry["player_id"] != "rossi_inter" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["service"] != "fantacalcio" || entry["error"] != "boom" {
		t.Fatalf("expected service and error fields: %+v", entry)
	}
	if caller, _ := entry["caller"].(string); !strings.Contains(caller, "logger_test.go") {
		t.Fatalf("expected caller to point at the test, got %q", caller)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Warn("still no panic")
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != LevelDebug || ParseLevel("WARN") != LevelWarn || ParseLevel("error") != LevelError {
		t.Fatalf("unexpected level mapping")
	}
	if ParseLevel("nonsense") != LevelInfo {
		t.Fatalf("expected info fallback")
	}
}
