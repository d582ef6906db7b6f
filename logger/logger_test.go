package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), Get())
	assert.Same(t, slog.Default(), Get(nil)) //nolint:staticcheck
	assert.Same(t, slog.Default(), Get(t.Context()))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	log, buf := bufferLogger()
	ctx := WithLogger(t.Context(), log)

	Get(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	// The first non-nil context wins.
	assert.Same(t, log, Get(nil, ctx, t.Context())) //nolint:staticcheck
}

func TestWithValues(t *testing.T) {
	t.Parallel()

	log, buf := bufferLogger()

	base := With(WithLogger(t.Context(), log), "run", "alpha")
	child := With(base, "index", 3)
	sibling := With(base, "index", 4)

	Get(child).Info("child")
	Get(sibling).Info("sibling")

	out := buf.String()
	assert.Contains(t, out, "msg=child run=alpha index=3")
	assert.Contains(t, out, "msg=sibling run=alpha index=4")

	assert.Same(t, base, With(base))
}

func TestWithMuted(t *testing.T) {
	t.Parallel()

	log, buf := bufferLogger()
	ctx := WithMuted(WithLogger(t.Context(), log), true)

	Get(ctx).Error("should not appear")
	assert.Empty(t, buf.String())

	ctx = WithMuted(ctx, false)
	Get(ctx).Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWithSlogt(t *testing.T) {
	t.Parallel()

	ctx := WithLogger(context.Background(), slogt.New(t))

	Get(ctx).Debug("routed to the test log")
}
