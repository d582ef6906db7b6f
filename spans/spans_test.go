package spans

import (
	"context"
	"errors"
	"testing"

	seqerrors "github.com/amp-labs/seqkit/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupTestTracer(t *testing.T) (context.Context, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	return WithTracer(t.Context(), tp.Tracer("test-tracer")), exporter
}

func TestTracerFromContext(t *testing.T) {
	t.Parallel()

	t.Run("tracer exists", func(t *testing.T) {
		t.Parallel()

		ctx, _ := setupTestTracer(t)

		tracer, found := TracerFromContext(ctx)
		assert.True(t, found)
		assert.NotNil(t, tracer)
	})

	t.Run("tracer does not exist", func(t *testing.T) {
		t.Parallel()

		tracer, found := TracerFromContext(t.Context())
		assert.False(t, found)
		assert.Nil(t, tracer)
	})
}

func TestStartErr(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ctx, exporter := setupTestTracer(t)

		called := false
		err := StartErr(ctx, "sum-batch",
			WithAttribute("items", attribute.IntValue(4)),
		).Enter(func(ctx context.Context, span trace.Span) error {
			called = true

			assert.True(t, span.SpanContext().IsValid())
			assert.Equal(t, span.SpanContext(), trace.SpanFromContext(ctx).SpanContext())

			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)

		stubs := exporter.GetSpans()
		require.Len(t, stubs, 1)
		assert.Equal(t, "sum-batch", stubs[0].Name)
		assert.Equal(t, codes.Ok, stubs[0].Status.Code)
		assert.Equal(t, trace.SpanKindInternal, stubs[0].SpanKind)
		assert.Contains(t, stubs[0].Attributes, attribute.Int("items", 4))
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		ctx, exporter := setupTestTracer(t)
		boom := errors.New("boom") //nolint:err113

		err := StartErr(ctx, "failing",
			WithErrorMessage("batch failed"),
			WithSpanKind(trace.SpanKindClient),
		).Enter(func(context.Context, trace.Span) error {
			return boom
		})

		require.ErrorIs(t, err, boom)

		stubs := exporter.GetSpans()
		require.Len(t, stubs, 1)
		assert.Equal(t, codes.Error, stubs[0].Status.Code)
		assert.Equal(t, "batch failed: boom", stubs[0].Status.Description)
		assert.Equal(t, trace.SpanKindClient, stubs[0].SpanKind)
		require.Len(t, stubs[0].Events, 1)
		assert.Equal(t, "exception", stubs[0].Events[0].Name)
	})

	t.Run("panic is recorded and re-raised", func(t *testing.T) {
		t.Parallel()

		ctx, exporter := setupTestTracer(t)

		assert.PanicsWithValue(t, "kaboom", func() {
			_ = StartErr(ctx, "panicking").Enter(func(context.Context, trace.Span) error {
				panic("kaboom")
			})
		})

		stubs := exporter.GetSpans()
		require.Len(t, stubs, 1)
		assert.Equal(t, codes.Error, stubs[0].Status.Code)
		assert.Contains(t, stubs[0].Status.Description, seqerrors.ErrPanicRecovered.Error())
		assert.Contains(t, stubs[0].Attributes, attribute.Bool("panic", true))
	})

	t.Run("no tracer", func(t *testing.T) {
		t.Parallel()

		const name = "untraced-span-test"

		before := testutil.ToFloat64(spanWithoutTracerCounter.WithLabelValues(name))

		called := false
		err := StartErr(t.Context(), name).Enter(func(context.Context, trace.Span) error {
			called = true

			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
		assert.InDelta(t, before+1, testutil.ToFloat64(spanWithoutTracerCounter.WithLabelValues(name)), 0)
	})

	t.Run("nil function", func(t *testing.T) {
		t.Parallel()

		ctx, exporter := setupTestTracer(t)

		require.NoError(t, StartErr(ctx, "nothing").Enter(nil))
		assert.Empty(t, exporter.GetSpans())
	})
}
