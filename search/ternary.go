package search

import (
	"cmp"

	"github.com/amp-labs/seqkit/compare"
)

// TernarySearch returns the index of the extremum of a unimodal slice.
// See TernarySearchFunc.
func TernarySearch[T cmp.Ordered](s []T, bound Bound) (int, bool) {
	return TernarySearchFunc(s, bound, compare.Default[T])
}

// TernarySearchByKeys is TernarySearchFunc with a comparator chained from
// key comparators (see compare.By and compare.Keys).
func TernarySearchByKeys[T any](s []T, bound Bound, keys ...compare.Comparator[T]) (int, bool) {
	return TernarySearchFunc(s, bound, compare.Keys(keys...))
}

// TernarySearchFunc returns the index of the extremum of s, which must be
// unimodal under c: it rises to a single peak and falls again, or falls to a
// single valley and rises again. A nil c means compare.Natural.
//
// The shape is taken to be a valley when either endpoint orders after the
// middle element, and a peak otherwise. When the extremum spans several equal
// elements, Lower returns the first of them and Upper the last.
//
// The boolean is false only for an empty slice, in which case the index is -1.
func TernarySearchFunc[T any](s []T, bound Bound, c compare.Comparator[T]) (int, bool) {
	switch len(s) {
	case 0:
		return -1, false
	case 1:
		return 0, true
	}

	c = compare.OrNatural(c)

	last := len(s) - 1
	middle := last / 2
	valley := c(s[0], s[middle]) > 0 || c(s[last], s[middle]) > 0

	// Positive when s[i] is closer to the extremum than s[j].
	order := func(i, j int) int {
		result := c(s[i], s[j])
		if valley {
			return -result
		}

		return result
	}

	left, right := 0, last

	for {
		switch right - left {
		case 0:
			return left, true
		case 1:
			result := order(left, right)

			switch {
			case result > 0:
				return left, true
			case result < 0:
				return right, true
			case bound == Upper:
				return right, true
			default:
				return left, true
			}
		}

		third := (right - left) / 3
		mid1 := left + third
		mid2 := right - third

		result := order(mid1, mid2)

		switch {
		case result > 0:
			right = mid2 - 1
		case result < 0:
			left = mid1 + 1
		case bound == Upper:
			left = mid1 + 1
		default:
			right = mid2 - 1
		}
	}
}
