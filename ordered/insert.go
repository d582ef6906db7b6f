// Package ordered mutates slices in place while keeping them in order, and
// answers questions about the order of a slice.
//
// Functions that change a slice's length take a pointer to it, so the
// caller's variable sees the new length. Removals compact the survivors in a
// single pass and zero the vacated tail so removed elements can be collected.
package ordered

import (
	"cmp"
	"slices"

	"github.com/amp-labs/seqkit/compare"
	"github.com/amp-labs/seqkit/search"
)

// Insert adds value to the sorted slice *s, keeping it sorted, and returns
// the index the value was placed at. See InsertFunc.
func Insert[T cmp.Ordered](s *[]T, value T) int {
	return InsertFunc(s, value, compare.Default[T])
}

// InsertFunc adds value to *s, which must be sorted by c (ascending or
// descending, as search.BinarySearchFunc detects), and returns the index used.
// The value goes before any elements equal to it. A nil c means
// compare.Natural.
func InsertFunc[T any](s *[]T, value T, c compare.Comparator[T]) int {
	idx := search.BinarySearchFunc(*s, value, search.Lower, c)
	*s = slices.Insert(*s, idx, value)

	return idx
}

// InsertAt inserts value at index, shifting later elements right. It returns
// false and leaves *s untouched when index is outside [0, len(*s)); use
// append to add at the end.
func InsertAt[T any](s *[]T, value T, index int) bool {
	if index < 0 || index >= len(*s) {
		return false
	}

	*s = slices.Insert(*s, index, value)

	return true
}
