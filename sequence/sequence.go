// Package sequence builds new slices: arithmetic ranges, repetitions and
// groupings. Nothing here modifies its input.
package sequence

import (
	"fmt"
	"slices"

	"github.com/amp-labs/seqkit/errors"
	"github.com/amp-labs/seqkit/numeric"
	"github.com/amp-labs/seqkit/optional"
)

// Range returns begin, begin+1, ... up to and including end.
func Range[N numeric.Number](begin, end N) []N {
	return RangeFunc(begin, end, 1, nil)
}

// RangeStep returns begin, begin+step, ... while the value is <= end. end is
// only included when the step lands on it.
func RangeStep[N numeric.Number](begin, end, step N) []N {
	return RangeFunc(begin, end, step, nil)
}

// RangeFunc is RangeStep keeping only the values for which predicate returns
// true. A nil predicate keeps everything.
//
// A step <= 0 yields an empty slice. Generation also stops once adding step
// no longer moves the value forward, which covers integer overflow and
// floats too large for step to register.
func RangeFunc[N numeric.Number](begin, end, step N, predicate func(N) bool) []N {
	out := []N{}

	if step <= 0 {
		return out
	}

	for value := begin; value <= end; {
		if predicate == nil || predicate(value) {
			out = append(out, value)
		}

		next := value + step
		if next <= value {
			break
		}

		value = next
	}

	return out
}

// Last returns the element index positions from the end of s: Last(s, 0) is
// the final element. It returns None when index is out of range.
func Last[T any](s []T, index int) optional.Value[T] {
	if index < 0 || index >= len(s) {
		return optional.None[T]()
	}

	return optional.Some(s[len(s)-1-index])
}

// Repeat returns count copies of s laid end to end. A zero count gives an
// empty slice and a negative one an error wrapping errors.ErrNegativeCount.
func Repeat[T any](s []T, count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errors.ErrNegativeCount, count)
	}

	return slices.Repeat(s, count), nil
}

// GroupBy buckets the elements of s by key. Each bucket keeps the elements
// in the order they appear in s.
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)

	for _, v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}

	return groups
}
