// Package numeric folds slices into sums and products, either over typed
// numbers or over loosely typed values that convert to numbers.
package numeric

import (
	"fmt"

	"github.com/amp-labs/seqkit/errors"
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the elements of s. An empty slice sums to 0.
func Sum[N Number](s []N) N {
	var total N

	for _, v := range s {
		total += v
	}

	return total
}

// SumBy adds up the numbers projected out of each element of s.
func SumBy[T any, N Number](s []T, projection func(T) N) N {
	var total N

	for _, v := range s {
		total += projection(v)
	}

	return total
}

// Product multiplies the elements of s. An empty slice multiplies to 1.
func Product[N Number](s []N) N {
	total := N(1)

	for _, v := range s {
		total *= v
	}

	return total
}

// ProductBy multiplies the numbers projected out of each element of s.
func ProductBy[T any, N Number](s []T, projection func(T) N) N {
	total := N(1)

	for _, v := range s {
		total *= projection(v)
	}

	return total
}

// ToNumber converts a loosely typed value to a float64. Bools become 0 or 1,
// numeric strings are parsed, and every built-in number type is accepted.
// Anything else, nil included, yields an error wrapping
// errors.ErrUnsupportedType.
func ToNumber(value any) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: nil is not a number", errors.ErrUnsupportedType)
	}

	number, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrUnsupportedType, err)
	}

	return number, nil
}

// SumAny converts every element with ToNumber and adds them up. It stops at
// the first element that fails to convert.
func SumAny(s []any) (float64, error) {
	var total float64

	for idx, v := range s {
		number, err := ToNumber(v)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", idx, err)
		}

		total += number
	}

	return total, nil
}

// ProductAny converts every element with ToNumber and multiplies them. It
// stops at the first element that fails to convert.
func ProductAny(s []any) (float64, error) {
	total := 1.0

	for idx, v := range s {
		number, err := ToNumber(v)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", idx, err)
		}

		total *= number
	}

	return total, nil
}
