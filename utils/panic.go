package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/seqkit/errors"
)

// GetPanicRecoveryError converts a recovered panic value and optional stack trace
// into a standard error wrapping errors.ErrPanicRecovered. If the panic value is
// nil, it returns nil. Error panic values stay reachable through errors.Is.
func GetPanicRecoveryError(recovered any, stack []byte) error {
	if recovered == nil {
		return nil
	}

	var err error

	if errVal, ok := recovered.(error); ok {
		err = fmt.Errorf("%w: %w", errors.ErrPanicRecovered, errVal)
	} else {
		err = fmt.Errorf("%w: %v", errors.ErrPanicRecovered, recovered)
	}

	if len(stack) > 0 {
		return fmt.Errorf("%w\nstack trace:\n%s", err, string(stack))
	}

	return err
}

// RecoverInto is meant to be deferred. It turns a panic in the surrounding
// function into an error stored in *err, joined with any error already there.
//
//	func run() (err error) {
//	    defer utils.RecoverInto(&err)
//	    ...
//	}
func RecoverInto(err *error) {
	recovered := recover()
	if recovered == nil {
		return
	}

	panicErr := GetPanicRecoveryError(recovered, debug.Stack())

	if *err != nil {
		*err = errors.Combine([]error{panicErr, *err})
	} else {
		*err = panicErr
	}
}
