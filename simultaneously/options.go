package simultaneously

import (
	"context"
	"log/slog"

	"github.com/amp-labs/seqkit/logger"
)

const defaultName = "foreach"

type options struct {
	maxConcurrency int
	executor       Executor
	logger         *slog.Logger
	name           string
}

// Option configures ForEach and Map.
type Option func(*options)

// WithMaxConcurrency limits how many callbacks run at the same time. A value
// below 1 (the default) means no limit: every element gets its own goroutine.
func WithMaxConcurrency(maxConcurrency int) Option {
	return func(o *options) {
		o.maxConcurrency = maxConcurrency
	}
}

// WithExecutor runs callbacks on exec instead of on goroutines owned by the
// call. Callbacks are submitted in index order and exec decides how many
// run at once, so WithMaxConcurrency is ignored. The executor is not closed.
func WithExecutor(exec Executor) Option {
	return func(o *options) {
		o.executor = exec
	}
}

// WithLogger sets the logger for debug records. By default the logger comes
// from the context (see logger.Get).
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithName labels the run in metrics, logs and the trace span name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		name: defaultName,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// loggerFor returns the configured logger, or the one ctx carries.
func (o *options) loggerFor(ctx context.Context) *slog.Logger {
	if o.logger != nil {
		return o.logger
	}

	return logger.Get(ctx)
}

// workers returns how many goroutines should process count elements.
func (o *options) workers(count int) int {
	if o.maxConcurrency < 1 || o.maxConcurrency > count {
		return count
	}

	return o.maxConcurrency
}
