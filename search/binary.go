// Package search finds positions in ordered and unimodal slices.
//
// Binary search works on slices sorted in either direction; the direction
// is detected from the first and last elements. Ternary search finds the
// extremum of a slice that rises then falls (or falls then rises).
//
// Neither search validates its precondition. On a slice without the
// required shape the result is some index in range, but not a meaningful one.
package search

import (
	"cmp"

	"github.com/amp-labs/seqkit/compare"
)

// BinarySearch returns the position of value in a sorted slice.
// See BinarySearchFunc.
func BinarySearch[T cmp.Ordered](s []T, value T, bound Bound) int {
	return BinarySearchFunc(s, value, bound, compare.Default[T])
}

// BinarySearchByKeys is BinarySearchFunc with a comparator chained from
// key comparators (see compare.By and compare.Keys). With no keys, elements
// are ordered by compare.Natural.
func BinarySearchByKeys[T any](s []T, value T, bound Bound, keys ...compare.Comparator[T]) int {
	return BinarySearchFunc(s, value, bound, compare.Keys(keys...))
}

// BinarySearchFunc returns the position of value in s, which must be sorted
// by c in ascending or descending order. A nil c means compare.Natural.
//
// For an ascending slice, Lower returns the index of the first element that
// is >= value and Upper the index of the first element that is > value; in
// both cases len(s) when there is none. Descending slices mirror this
// (first element <= value, first element < value). The result is always an
// insertion point that keeps s sorted, so an empty slice yields 0.
func BinarySearchFunc[T any](s []T, value T, bound Bound, c compare.Comparator[T]) int {
	if len(s) == 0 {
		return 0
	}

	c = compare.OrNatural(c)
	descending := c(s[0], s[len(s)-1]) > 0

	left, right := 0, len(s)-1

	for left <= right {
		mid := int(uint(left+right) >> 1)

		result := c(s[mid], value)
		if descending {
			result = -result
		}

		switch {
		case result < 0:
			left = mid + 1
		case result > 0:
			right = mid - 1
		case bound == Upper:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return left
}

// Contains reports whether value occurs in the sorted slice s.
func Contains[T any](s []T, value T, c compare.Comparator[T]) bool {
	c = compare.OrNatural(c)

	idx := BinarySearchFunc(s, value, Lower, c)

	return idx < len(s) && c(s[idx], value) == 0
}
