// Package logger resolves the slog.Logger to use for a context. Loggers and
// extra key-values can be attached to a context, and a context can be muted
// so nothing logged through it is emitted.
package logger

import (
	"context"
	"log/slog"
)

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

const (
	loggerKey contextKey = "logger"
	muteKey   contextKey = "mute"
	valuesKey contextKey = "loggerValues"
)

// WithLogger attaches a logger to the context. Get returns it (with any
// values added by With) instead of slog.Default().
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey, logger)
}

// WithMuted adds a muted flag to the context. When muted is true, all logging
// operations on this context will be suppressed.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(muteKey).(bool)

	return ok && muted
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	vals := append(getValues(ctx), values...) //nolint:gocritic

	return context.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(valuesKey).([]any)
	if !ok {
		return nil
	}

	// Copy so later appends never share a backing array between contexts.
	return append([]any(nil), vals...)
}

// nullHandler is a slog.Handler that discards everything.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the logger for the first non-nil context given: a discarding
// logger if it is muted, otherwise the logger attached with WithLogger (or
// slog.Default()) carrying the values added with With.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := realCtx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

// getRealContext extracts the first non-nil context from a variadic list.
// If no context is provided or all are nil, it returns context.Background().
func getRealContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}
