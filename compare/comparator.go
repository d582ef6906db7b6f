package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparator is a three-way comparison: negative when a orders before b,
// positive when a orders after b, and zero when they rank the same.
// A comparator must be antisymmetric and transitive for the duration of
// any single call that uses it.
type Comparator[T any] func(a, b T) int

// Default orders values by their natural order and always returns -1, 0 or 1.
// Floating point NaNs order before every other value.
func Default[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// OrDefault returns c, or Default when c is nil.
func OrDefault[T cmp.Ordered](c Comparator[T]) Comparator[T] {
	if c == nil {
		return Default[T]
	}

	return c
}

// OrNatural returns c, or Natural when c is nil.
func OrNatural[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return Natural[T]
	}

	return c
}

// Reverse flips the order of a comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// HumanString orders strings the way people expect file names to be
// ordered: embedded numbers compare by value, so "file2" < "file10".
func HumanString(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}
