package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// contextKey is a unique type for storing values in context to avoid collisions.
type contextKey string

// TracerKey is the context key used to store the OpenTelemetry tracer.
const TracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. Spans started
// with that context (or one derived from it) use this tracer.
//
// Example:
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("my-service"))
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, TracerKey, tracer)
}

// TracerFromContext retrieves the OpenTelemetry tracer from the context.
// Returns the tracer and true if found, or nil and false if not present.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	if ctx == nil {
		return nil, false
	}

	tracer, ok := ctx.Value(TracerKey).(trace.Tracer)
	if !ok || tracer == nil {
		return nil, false
	}

	return tracer, true
}
