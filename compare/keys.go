package compare

import "cmp"

// By builds a comparator that orders values by the key the selector
// projects out of them.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](selector func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(selector(a), selector(b))
	}
}

// Keys chains key comparators into a lexicographic ordering: values are
// compared by the first key, ties are broken by the second, and so on.
// When every key ties, the result is 0. With no keys at all, Keys falls
// back to Natural.
//
// Example:
//
//	// Odd numbers after even ones, then descending.
//	c := compare.Keys(
//	    compare.By(func(n int) int { return n & 1 }),
//	    compare.By(func(n int) int { return -n }),
//	)
func Keys[T any](keys ...Comparator[T]) Comparator[T] {
	if len(keys) == 0 {
		return Natural[T]
	}

	return func(a, b T) int {
		for _, key := range keys {
			if result := key(a, b); result != 0 {
				return result
			}
		}

		return 0
	}
}
