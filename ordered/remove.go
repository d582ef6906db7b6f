package ordered

import (
	"slices"
)

// Remove deletes every element equal to any of values and returns how many
// were removed. The survivors keep their relative order.
func Remove[T comparable](s *[]T, values ...T) int {
	if len(values) == 0 || len(*s) == 0 {
		return 0
	}

	targets := make(map[T]struct{}, len(values))
	for _, v := range values {
		targets[v] = struct{}{}
	}

	return RemoveBy(s, func(value T, _ int, _ []T) bool {
		_, ok := targets[value]

		return ok
	})
}

// RemoveAt deletes the elements at the given indices, which may come in any
// order and may repeat. It returns false and leaves *s untouched if any index
// is out of range.
func RemoveAt[T any](s *[]T, indices ...int) bool {
	for _, idx := range indices {
		if idx < 0 || idx >= len(*s) {
			return false
		}
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)

	compactIndices(s, slices.Compact(sorted))

	return true
}

// RemoveBy deletes every element for which predicate returns true and returns
// how many were removed. The predicate is called once per element, in order,
// with the element, its index and the slice as it was before any removal.
func RemoveBy[T any](s *[]T, predicate func(value T, index int, s []T) bool) int {
	items := *s

	var indices []int

	for idx, value := range items {
		if predicate(value, idx, items) {
			indices = append(indices, idx)
		}
	}

	compactIndices(s, indices)

	return len(indices)
}

// compactIndices removes the elements at indices, which must be sorted,
// unique and in range, shifting each survivor left exactly once.
func compactIndices[T any](s *[]T, indices []int) {
	if len(indices) == 0 {
		return
	}

	items := *s
	skipped := 0

	for idx := indices[0]; idx < len(items); idx++ {
		if skipped < len(indices) && idx == indices[skipped] {
			skipped++

			continue
		}

		items[idx-skipped] = items[idx]
	}

	newLen := len(items) - len(indices)
	clear(items[newLen:])

	*s = items[:newLen]
}
