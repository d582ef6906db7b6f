package ordered

import (
	"cmp"
	"slices"

	"github.com/amp-labs/seqkit/compare"
	"github.com/amp-labs/seqkit/optional"
)

// IsAscending reports whether no element of s orders after its successor.
func IsAscending[T cmp.Ordered](s []T) bool {
	return IsAscendingFunc(s, compare.Default[T])
}

// IsAscendingFunc is IsAscending ordered by c (nil means compare.Natural).
func IsAscendingFunc[T any](s []T, c compare.Comparator[T]) bool {
	c = compare.OrNatural(c)

	for i := 1; i < len(s); i++ {
		if c(s[i-1], s[i]) > 0 {
			return false
		}
	}

	return true
}

// IsDescending reports whether no element of s orders before its successor.
// A constant slice is both ascending and descending.
func IsDescending[T cmp.Ordered](s []T) bool {
	return IsDescendingFunc(s, compare.Default[T])
}

// IsDescendingFunc is IsDescending ordered by c (nil means compare.Natural).
func IsDescendingFunc[T any](s []T, c compare.Comparator[T]) bool {
	c = compare.OrNatural(c)

	for i := 1; i < len(s); i++ {
		if c(s[i-1], s[i]) < 0 {
			return false
		}
	}

	return true
}

// Minimum returns the smallest element of s, or None when s is empty.
func Minimum[T cmp.Ordered](s []T) optional.Value[T] {
	return MinimumFunc(s, compare.Default[T])
}

// MinimumFunc returns the first element of s that no other element orders
// before. A nil c means compare.Natural.
func MinimumFunc[T any](s []T, c compare.Comparator[T]) optional.Value[T] {
	return extremum(s, compare.OrNatural(c), -1)
}

// Maximum returns the largest element of s, or None when s is empty.
func Maximum[T cmp.Ordered](s []T) optional.Value[T] {
	return MaximumFunc(s, compare.Default[T])
}

// MaximumFunc returns the first element of s that no other element orders
// after. A nil c means compare.Natural.
func MaximumFunc[T any](s []T, c compare.Comparator[T]) optional.Value[T] {
	return extremum(s, compare.OrNatural(c), 1)
}

// SortByKeys sorts s in place with the lexicographic order of keys (see
// compare.By), keeping equal elements in their original order. With no keys
// the elements are sorted by compare.Natural.
func SortByKeys[T any](s []T, keys ...compare.Comparator[T]) {
	if len(s) < 2 { //nolint:mnd
		return
	}

	slices.SortStableFunc(s, compare.Keys(keys...))
}

func extremum[T any](s []T, c compare.Comparator[T], sign int) optional.Value[T] {
	if len(s) == 0 {
		return optional.None[T]()
	}

	best := s[0]

	for _, value := range s[1:] {
		if c(value, best)*sign > 0 {
			best = value
		}
	}

	return optional.Some(best)
}
