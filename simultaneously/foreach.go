// Package simultaneously runs a callback over every element of a slice with
// bounded concurrency.
//
// With a limit of n, exactly n worker goroutines share an atomic cursor and
// claim indices in increasing order, so at most n callbacks are ever in
// flight and elements start in index order. The first failing callback
// cancels the context handed to the others and no further index is claimed.
// ForEach and Map return only after every started callback has returned.
//
// Panics in callbacks are recovered and reported as errors wrapping
// errors.ErrPanicRecovered.
package simultaneously

import (
	"context"

	"github.com/amp-labs/seqkit/errors"
	"github.com/amp-labs/seqkit/spans"
	"github.com/amp-labs/seqkit/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// ForEach calls fn once for every element of values and returns the first
// error any call produced, or nil. The input slice is never modified.
//
// An empty slice returns nil without calling fn. See the package
// documentation for the concurrency and cancellation rules.
//
// Example:
//
//	err := simultaneously.ForEach(ctx, urls, func(ctx context.Context, url string, _ int) error {
//	    return fetch(ctx, url)
//	}, simultaneously.WithMaxConcurrency(4))
func ForEach[T any](
	ctx context.Context,
	values []T,
	fn func(ctx context.Context, value T, index int) error,
	opts ...Option,
) error {
	if len(values) == 0 {
		return nil
	}

	cfg := newOptions(opts)

	return run(ctx, cfg, len(values), func(ctx context.Context, idx int) error {
		return fn(ctx, values[idx], idx)
	})
}

// run traces, logs and counts a batch of count callbacks and dispatches it
// to the configured executor or to a pool of its own workers.
func run(ctx context.Context, cfg *options, count int, call func(ctx context.Context, index int) error) error {
	runsTotal.WithLabelValues(cfg.name).Inc()

	return spans.StartErr(ctx, cfg.name,
		spans.WithAttribute("items", attribute.IntValue(count)),
		spans.WithAttribute("max_concurrency", attribute.IntValue(cfg.maxConcurrency)),
		spans.WithAttribute("executor", attribute.BoolValue(cfg.executor != nil)),
	).Enter(func(ctx context.Context, _ trace.Span) error {
		log := cfg.loggerFor(ctx)

		log.DebugContext(ctx, "Starting concurrent run",
			"name", cfg.name,
			"items", count,
			"maxConcurrency", cfg.maxConcurrency)

		var err error

		invoke := cfg.instrument(call)

		if cfg.executor != nil {
			err = runOnExecutor(ctx, cfg.executor, count, invoke)
		} else {
			err = runOnWorkers(ctx, cfg.workers(count), count, invoke)
		}

		if err != nil {
			log.DebugContext(ctx, "Concurrent run failed", "name", cfg.name, "error", err)

			return err
		}

		log.DebugContext(ctx, "Concurrent run finished", "name", cfg.name)

		return nil
	})
}

// instrument wraps call with panic recovery and the callback metrics.
func (o *options) instrument(call func(ctx context.Context, index int) error) func(context.Context, int) error {
	inFlight := callbacksInFlight.WithLabelValues(o.name)

	return func(ctx context.Context, idx int) (err error) {
		inFlight.Inc()

		defer func() {
			inFlight.Dec()
			callbacksTotal.WithLabelValues(o.name, outcome(err)).Inc()
		}()

		defer utils.RecoverInto(&err)

		return call(ctx, idx)
	}
}

// runOnWorkers starts workers goroutines that claim indices from a shared
// cursor until the indices run out or the group's context is cancelled.
func runOnWorkers(ctx context.Context, workers, count int, call func(context.Context, int) error) error {
	group, ctx := errgroup.WithContext(ctx)
	cursor := atomic.NewInt64(-1)

	for range workers {
		group.Go(func() error {
			for {
				idx := int(cursor.Inc())
				if idx >= count {
					return nil
				}

				if !utils.IsContextAlive(ctx) {
					return ctx.Err()
				}

				if err := call(ctx, idx); err != nil {
					return err
				}
			}
		})
	}

	return group.Wait()
}

// runOnExecutor submits every index to exec in order and waits for all of
// them to report back.
func runOnExecutor(ctx context.Context, exec Executor, count int, call func(context.Context, int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := newCollector(exec, count, cancel)

	c.launchAll(ctx, count, call)
	errs := c.collectResults(count)
	c.cleanup()

	return errors.First(errs...)
}
