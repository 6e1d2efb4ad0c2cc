package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var infoBuf, errorBuf bytes.Buffer
	infoHandler := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	errorHandler := slog.NewJSONHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError})

	logger := slog.New(NewMultiHandler(infoHandler, errorHandler))

	logger.Info("routine event")
	logger.Error("bad event", "error", "boom")

	if !strings.Contains(infoBuf.String(), "routine event") {
		t.Fatalf("info handler missed info record: %s", infoBuf.String())
	}
	if strings.Contains(errorBuf.String(), "routine event") {
		t.Fatalf("error handler must not receive info records: %s", errorBuf.String())
	}
	if !strings.Contains(errorBuf.String(), "bad event") {
		t.Fatalf("error handler missed error record: %s", errorBuf.String())
	}
}

func TestMultiHandler_EnabledIfAnyHandlerIs(t *testing.T) {
	var buf bytes.Buffer
	errorOnly := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})

	m := NewMultiHandler(errorOnly)
	if m.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info to be disabled when no handler accepts it")
	}
	if !m.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected error to be enabled")
	}
}
