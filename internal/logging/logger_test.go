package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"scriptforge/internal/services"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl, false))
	logger.Info("draft validated", String("component", "validator"), Int("episode", 2))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if payload["msg"] != "draft validated" {
		t.Fatalf("msg = %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("level = %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("expected ts field")
	}
	if payload["component"] != "validator" {
		t.Fatalf("component = %v", payload["component"])
	}
}

func TestConsoleHandlerHeader(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))
	logger = NewComponentLogger(logger, "workflow")
	logger.Info("episode delivered", Int(FieldEpisode, 3), String("title", "Ep3"))

	out := buf.String()
	if !strings.Contains(out, "[workflow]") {
		t.Fatalf("expected component in header, got %q", out)
	}
	if !strings.Contains(out, "Episode #3") {
		t.Fatalf("expected episode subject in header, got %q", out)
	}
	if !strings.Contains(out, "title: Ep3") {
		t.Fatalf("expected title field, got %q", out)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))
	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below level, got %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	base := slog.New(newJSONHandler(&buf, lvl, false))

	ctx := services.WithRunID(context.Background(), "run-123")
	ctx = services.WithEpisode(ctx, 7)
	ctx = services.WithState(ctx, "validate")

	WithContext(ctx, base).Info("checking")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if payload[FieldRunID] != "run-123" {
		t.Fatalf("run_id = %v", payload[FieldRunID])
	}
	if payload[FieldEpisode] != float64(7) {
		t.Fatalf("episode = %v", payload[FieldEpisode])
	}
	if payload[FieldState] != "validate" {
		t.Fatalf("state = %v", payload[FieldState])
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
