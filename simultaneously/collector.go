package simultaneously

import (
	"context"
	"sync"
)

// collector submits callbacks to an Executor and gathers their results.
// When any callback fails, it cancels the shared context to stop remaining work.
type collector struct {
	exec       Executor           // Executor to run callbacks with concurrency control
	cancelOnce sync.Once          // Ensures cancel is called exactly once on first error
	cancel     context.CancelFunc // Cancels shared context to stop remaining callbacks
	errorChan  chan error         // Buffered channel for collecting errors from callbacks
	doneChan   chan struct{}      // Buffered channel signaling successful completions
	waitGroup  sync.WaitGroup     // Tracks completion of all launched callbacks
}

// newCollector creates a collector for size callbacks. The channels are
// buffered to size so no callback ever blocks reporting its result.
func newCollector(exec Executor, size int, cancel context.CancelFunc) *collector {
	return &collector{
		exec:      exec,
		cancel:    cancel,
		errorChan: make(chan error, size),
		doneChan:  make(chan struct{}, size),
	}
}

// cleanup waits for all callbacks to report and closes the channels.
func (e *collector) cleanup() {
	e.waitGroup.Wait()

	close(e.errorChan)
	close(e.doneChan)
}

// launchAll submits call(ctx, 0) through call(ctx, count-1) in index order.
func (e *collector) launchAll(ctx context.Context, count int, call func(ctx context.Context, index int) error) {
	for idx := range count {
		e.waitGroup.Add(1)
		e.exec.GoContext(ctx, func(ctx context.Context) error {
			return call(ctx, idx)
		}, func(err error) {
			defer e.waitGroup.Done()

			if err != nil {
				// Report before cancelling, so the error that caused the
				// cancellation is collected ahead of the context errors it
				// triggers.
				e.errorChan <- err

				e.cancelOnce.Do(e.cancel)
			} else {
				e.doneChan <- struct{}{}
			}
		})
	}
}

// collectResults blocks until count results arrive and returns the errors
// in arrival order.
func (e *collector) collectResults(count int) []error {
	var errs []error

	for range count {
		select {
		case err := <-e.errorChan:
			errs = append(errs, err)
		case <-e.doneChan: // Callback completed successfully
		}
	}

	return errs
}
