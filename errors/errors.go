// Package errors holds the sentinel errors shared by the seqkit packages.
// Callers match them with the standard library's errors.Is; the packages
// that return them usually wrap them with extra detail.
package errors

import "errors"

var (
	// ErrEmptyInput is returned when an operation that needs at least one
	// sequence (multiset.Intersection, multiset.Union) receives none.
	ErrEmptyInput = errors.New("no sequence provided")

	// ErrSubsetViolation is returned by multiset.Complement when the source
	// is not a sub-multiset of the universal sequence.
	ErrSubsetViolation = errors.New("source is not a subset of universal")

	// ErrUnsupportedType is returned (or panicked with, for comparators) when
	// a value cannot be converted to a number or has no natural ordering.
	ErrUnsupportedType = errors.New("unsupported element type")

	// ErrNegativeCount is returned when a repetition count is below zero.
	ErrNegativeCount = errors.New("count must be greater than or equal to 0")

	// ErrInvalidBound is returned when a search bound name can't be parsed.
	ErrInvalidBound = errors.New("invalid search bound")

	// ErrPanicRecovered wraps panics recovered from user callbacks.
	ErrPanicRecovered = errors.New("panic recovered")

	// ErrExecutorClosed is reported for callbacks submitted to an executor
	// that has been closed.
	ErrExecutorClosed = errors.New("executor is closed")
)

// First returns the first non-nil error, or nil if there is none.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Combine returns a single error from a slice of errors.
// Returns nil for an empty slice, the error itself when there's only one,
// or a joined error (using errors.Join) when there are several.
func Combine(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
