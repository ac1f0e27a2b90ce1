package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("plane not enabled", "plane", 1)
	if !strings.Contains(buf.String(), "plane not enabled") {
		t.Fatalf("missing record, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nil should restore the silent logger")
	}
}
