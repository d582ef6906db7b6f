package sortable

import (
	"github.com/amp-labs/seqkit/compare"
)

// Sortable is implemented by types that carry their own ordering.
// compare.Natural recognizes the LessThan method, so Sortable values can be
// passed to any helper that falls back to natural ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparator for Sortable values, suitable wherever a
// compare.Comparator is expected.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
