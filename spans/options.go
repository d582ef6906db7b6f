package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WithAttribute adds an attribute to the span when it is created.
//
// Example:
//
//	spans.StartErr(ctx, "process-batch",
//	    spans.WithAttribute("items", attribute.IntValue(len(items))),
//	)
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind sets the OpenTelemetry span kind. The default is
// SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithErrorMessage sets a prefix for the span status description when the
// wrapped function fails: "{prefix}: {error message}".
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}
