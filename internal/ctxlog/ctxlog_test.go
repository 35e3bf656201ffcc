package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx, nil).Info("scaffold", "type", "Page")

	if !strings.Contains(buf.String(), "type=Page") {
		t.Fatalf("expected logger from context to be used, got %q", buf.String())
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
	if got := FromContext(context.Background(), nil); got != Discard() {
		t.Fatalf("expected discard logger")
	}
}
