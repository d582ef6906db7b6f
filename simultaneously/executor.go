package simultaneously

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/seqkit/errors"
	"github.com/amp-labs/seqkit/utils"
	"go.uber.org/atomic"
)

// Executor runs callbacks asynchronously. done is called exactly once per
// submitted callback with its result, from whichever goroutine ran it.
type Executor interface {
	GoContext(ctx context.Context, fn func(context.Context) error, done func(error))
	Go(fn func(context.Context) error, done func(error))
	Close() error
}

var (
	_ Executor = (*DefaultExecutor)(nil)
	_ Executor = (*PondExecutor)(nil)
)

// DefaultExecutor starts a goroutine per callback, holding back callbacks
// while maxConcurrent of them are running.
type DefaultExecutor struct {
	sem    chan struct{}
	closed *atomic.Bool
}

// NewDefaultExecutor creates an executor that runs at most maxConcurrent
// callbacks at a time. A value below 1 means no limit.
func NewDefaultExecutor(maxConcurrent int) *DefaultExecutor {
	exec := &DefaultExecutor{
		closed: atomic.NewBool(false),
	}

	if maxConcurrent > 0 {
		exec.sem = make(chan struct{}, maxConcurrent)

		for range maxConcurrent {
			exec.sem <- struct{}{}
		}
	}

	return exec
}

// Go runs fn with a background context.
func (d *DefaultExecutor) Go(fn func(context.Context) error, done func(error)) {
	d.GoContext(context.Background(), fn, done)
}

// GoContext blocks until a slot is free, then runs fn on a new goroutine.
// If ctx ends first, done receives the context error and fn never runs.
func (d *DefaultExecutor) GoContext(ctx context.Context, fn func(context.Context) error, done func(error)) {
	if ctx == nil {
		ctx = context.Background()
	}

	if d.closed.Load() {
		done(fmt.Errorf("%w: default executor", errors.ErrExecutorClosed))

		return
	}

	if d.sem != nil {
		select {
		case <-ctx.Done():
			done(ctx.Err())

			return
		case <-d.sem: // take one out (will block if empty)
		}
	}

	go func() {
		if d.sem != nil {
			defer func() {
				d.sem <- struct{}{} // put it back
			}()
		}

		done(executeCallback(ctx, fn))
	}()
}

// Close makes the executor refuse new callbacks. Running callbacks are not
// affected. Close is idempotent.
func (d *DefaultExecutor) Close() error {
	d.closed.Store(true)

	return nil
}

// PondExecutor runs callbacks on a pond worker pool, which queues them in
// submission order and bounds concurrency by the pool's own limit.
type PondExecutor struct {
	pool pond.Pool
}

// NewPondExecutor wraps pool. Closing the executor stops the pool.
func NewPondExecutor(pool pond.Pool) *PondExecutor {
	return &PondExecutor{pool: pool}
}

// Go runs fn with a background context.
func (p *PondExecutor) Go(fn func(context.Context) error, done func(error)) {
	p.GoContext(context.Background(), fn, done)
}

// GoContext queues fn on the pool. If the pool has been stopped, done
// receives an error wrapping errors.ErrExecutorClosed.
func (p *PondExecutor) GoContext(ctx context.Context, fn func(context.Context) error, done func(error)) {
	if ctx == nil {
		ctx = context.Background()
	}

	err := p.pool.Go(func() {
		done(executeCallback(ctx, fn))
	})
	if err != nil {
		done(fmt.Errorf("%w: %w", errors.ErrExecutorClosed, err))
	}
}

// Close stops the pool and waits for queued callbacks to finish.
func (p *PondExecutor) Close() error {
	p.pool.StopAndWait()

	return nil
}

// executeCallback runs fn unless ctx is already done, turning a panic into
// an error.
func executeCallback(ctx context.Context, fn func(context.Context) error) (err error) {
	if !utils.IsContextAlive(ctx) {
		return ctx.Err()
	}

	defer utils.RecoverInto(&err)

	return fn(ctx)
}
