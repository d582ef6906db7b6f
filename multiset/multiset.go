// Package multiset implements set algebra over slices that may contain
// repeated values. Multiplicities are preserved: an intersection keeps the
// smaller count of each value, a union the larger one.
//
// Inputs may be in any order. Every function sorts private copies of its
// arguments and never writes to the slices it is given. Two elements are the
// same value when the comparator returns 0 for them.
package multiset

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/amp-labs/seqkit/compare"
	"github.com/amp-labs/seqkit/errors"
)

// Intersection returns the values common to every sequence, each repeated
// as many times as it appears in the sequence where it is least frequent.
// See IntersectionFunc.
func Intersection[T cmp.Ordered](seqs ...[]T) ([]T, error) {
	return IntersectionFunc(compare.Default[T], seqs...)
}

// IntersectionFunc is Intersection ordered by c (nil means compare.Natural).
//
// With no sequences it returns errors.ErrEmptyInput. A single sequence is
// returned as is, without copying or sorting. Otherwise the result is sorted
// by c, and the work stops early as soon as a partial intersection is empty.
func IntersectionFunc[T any](c compare.Comparator[T], seqs ...[]T) ([]T, error) {
	switch len(seqs) {
	case 0:
		return nil, fmt.Errorf("%w: intersection needs at least one sequence", errors.ErrEmptyInput)
	case 1:
		return seqs[0], nil
	}

	c = compare.OrNatural(c)
	result := sortedCopy(seqs[0], c)

	for _, seq := range seqs[1:] {
		result = intersectSorted(result, sortedCopy(seq, c), c)
		if len(result) == 0 {
			return result, nil
		}
	}

	return result, nil
}

// Union returns every value found in any sequence, each repeated as many
// times as it appears in the sequence where it is most frequent.
// See UnionFunc.
func Union[T cmp.Ordered](seqs ...[]T) ([]T, error) {
	return UnionFunc(compare.Default[T], seqs...)
}

// UnionFunc is Union ordered by c (nil means compare.Natural).
//
// With no sequences it returns errors.ErrEmptyInput. A single sequence is
// returned as is. Otherwise the result is sorted by c.
func UnionFunc[T any](c compare.Comparator[T], seqs ...[]T) ([]T, error) {
	switch len(seqs) {
	case 0:
		return nil, fmt.Errorf("%w: union needs at least one sequence", errors.ErrEmptyInput)
	case 1:
		return seqs[0], nil
	}

	c = compare.OrNatural(c)
	result := sortedCopy(seqs[0], c)

	for _, seq := range seqs[1:] {
		result = unionSorted(result, sortedCopy(seq, c), c)
	}

	return result, nil
}

// Complement returns universal minus source. See ComplementFunc.
func Complement[T cmp.Ordered](source, universal []T) ([]T, error) {
	return ComplementFunc(compare.Default[T], source, universal)
}

// ComplementFunc returns the elements of universal that are not accounted
// for by source, sorted by c (nil means compare.Natural). source must be a
// sub-multiset of universal: every element of source, counted with
// multiplicity, has to appear in universal.
//
// An empty source yields a plain copy of universal. Otherwise, when source is
// longer than universal or holds a value universal lacks, the error wraps
// errors.ErrSubsetViolation.
func ComplementFunc[T any](c compare.Comparator[T], source, universal []T) ([]T, error) {
	if len(source) == 0 {
		return slices.Clone(universal), nil
	}

	if len(source) > len(universal) {
		return nil, fmt.Errorf("%w: source has %d elements, universal has %d",
			errors.ErrSubsetViolation, len(source), len(universal))
	}

	c = compare.OrNatural(c)
	src := sortedCopy(source, c)
	dst := sortedCopy(universal, c)

	result := make([]T, 0, len(dst)-len(src))
	matched := 0

	for _, value := range dst {
		if matched < len(src) && c(src[matched], value) == 0 {
			matched++
		} else {
			result = append(result, value)
		}
	}

	if matched != len(src) {
		return nil, fmt.Errorf("%w: %v is missing from universal", errors.ErrSubsetViolation, src[matched])
	}

	return result, nil
}

// Difference returns source minus target. See DifferenceFunc.
func Difference[T cmp.Ordered](source, target []T) []T {
	return DifferenceFunc(compare.Default[T], source, target)
}

// DifferenceFunc returns the elements of source left over after removing one
// occurrence per matching element of target. Unlike ComplementFunc, target
// may hold anything; elements it has that source lacks are ignored.
//
// An empty source yields an empty slice and an empty target yields a plain
// copy of source in its original order. In every other case the result is
// sorted by c (nil means compare.Natural).
func DifferenceFunc[T any](c compare.Comparator[T], source, target []T) []T {
	if len(source) == 0 {
		return []T{}
	}

	if len(target) == 0 {
		return slices.Clone(source)
	}

	c = compare.OrNatural(c)
	src := sortedCopy(source, c)
	dst := sortedCopy(target, c)

	result := make([]T, 0, len(src))
	j := 0

	for _, value := range src {
		for j < len(dst) && c(dst[j], value) < 0 {
			j++
		}

		if j < len(dst) && c(dst[j], value) == 0 {
			j++

			continue
		}

		result = append(result, value)
	}

	return result
}

// Intersects reports whether a and b share at least one value.
func Intersects[T cmp.Ordered](a, b []T) bool {
	return IntersectsFunc(compare.Default[T], a, b)
}

// IntersectsFunc is Intersects ordered by c (nil means compare.Natural).
func IntersectsFunc[T any](c compare.Comparator[T], a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	c = compare.OrNatural(c)
	left := sortedCopy(a, c)
	right := sortedCopy(b, c)

	for i, j := 0, 0; i < len(left) && j < len(right); {
		switch result := c(left[i], right[j]); {
		case result == 0:
			return true
		case result < 0:
			i++
		default:
			j++
		}
	}

	return false
}

func sortedCopy[T any](seq []T, c compare.Comparator[T]) []T {
	out := slices.Clone(seq)
	slices.SortFunc(out, c)

	return out
}

// intersectSorted merges two sorted slices, keeping min(count) of each value.
func intersectSorted[T any](a, b []T, c compare.Comparator[T]) []T {
	result := make([]T, 0, min(len(a), len(b)))

	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch order := c(a[i], b[j]); {
		case order == 0:
			result = append(result, a[i])
			i++
			j++
		case order < 0:
			i++
		default:
			j++
		}
	}

	return result
}

// unionSorted merges two sorted slices, keeping max(count) of each value.
func unionSorted[T any](a, b []T, c compare.Comparator[T]) []T {
	result := make([]T, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch order := c(a[i], b[j]); {
		case order == 0:
			result = append(result, a[i])
			i++
			j++
		case order < 0:
			result = append(result, a[i])
			i++
		default:
			result = append(result, b[j])
			j++
		}
	}

	result = append(result, a[i:]...)
	result = append(result, b[j:]...)

	return result
}
