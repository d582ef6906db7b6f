package spans

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/seqkit/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a span before it starts.
type Option func(*runner)

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindInternal,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// runner manages the execution of a function within an OpenTelemetry span.
type runner struct {
	spanName string
	// failure is an optional prefix for the error status description.
	failure  string
	spanKind trace.SpanKind
	tracer   trace.Tracer

	// sso are span start options passed to tracer.Start().
	sso []trace.SpanStartOption
}

func (r *runner) runWithSpan(
	ctx context.Context,
	operation func(ctx context.Context, span trace.Span) error,
) (errOut error) {
	opts := make([]trace.SpanStartOption, len(r.sso)+1)

	copy(opts, r.sso)
	opts[len(r.sso)] = trace.WithSpanKind(r.spanKind)

	ctx, span := r.tracer.Start(ctx, r.spanName, opts...)
	defer span.End()

	defer func() {
		if panicErr := recover(); panicErr != nil {
			span.SetAttributes(attribute.Bool("panic", true))

			err := utils.GetPanicRecoveryError(panicErr, debug.Stack())
			span.RecordError(err)
			r.setErrorStatus(span, err)

			panic(panicErr)
		}
	}()

	err := operation(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}

	return err
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}
