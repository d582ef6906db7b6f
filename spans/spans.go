// Package spans wraps a unit of work in an OpenTelemetry span.
//
// The tracer is taken from the context (see WithTracer). When there is none,
// the work runs untraced and a counter records the gap. Errors returned by
// the work are recorded on the span and reflected in its status; panics are
// recorded and then re-raised.
//
// Usage:
//
//	ctx = spans.WithTracer(ctx, tracer)
//	err := spans.StartErr(ctx, "load-batch",
//	    spans.WithAttribute("items", attribute.IntValue(len(items))),
//	).Enter(func(ctx context.Context, span trace.Span) error {
//	    return load(ctx, items)
//	})
package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// StartErrorOrchestrator runs a function that returns an error inside a
// span. Create one with StartErr.
type StartErrorOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartErr prepares a span named name around a fallible operation. Nothing
// happens until Enter is called.
func StartErr(ctx context.Context, name string, opts ...Option) *StartErrorOrchestrator {
	return &StartErrorOrchestrator{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// Enter runs f inside the span and returns its error. A nil f is a no-op.
func (o *StartErrorOrchestrator) Enter(f func(ctx context.Context, span trace.Span) error) error {
	if f == nil {
		return nil
	}

	tracer, found := TracerFromContext(o.ctx)
	if !found {
		spanWithoutTracerCounter.WithLabelValues(o.name).Inc()

		return f(o.ctx, trace.SpanFromContext(o.ctx))
	}

	return newRunner(tracer, o.name, o.opts...).runWithSpan(o.ctx, f)
}
