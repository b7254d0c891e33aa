package isohedral

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultDiscards(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLoggerRoundTrip(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the logger just set")
	}

	if _, err := New(0); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("debug logger captured no output from New")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
