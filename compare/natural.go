package compare

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"github.com/amp-labs/seqkit/errors"
)

// lessThaner matches the sortable wrapper types (and anything shaped like them).
type lessThaner[T any] interface {
	LessThan(other T) bool
}

// Natural orders values whose type is only known at run time. It is the
// fallback used by Keys when no key is given, and by the Func variants of the
// ordering helpers when they receive a nil comparator.
//
// Supported values, in order of precedence:
//   - types with a LessThan(T) bool method (see the sortable package)
//   - time.Time
//   - strings, including named string types
//   - integers, unsigned integers, floats and bools (false < true); these
//     may be mixed, in which case they compare as float64
//
// Any other combination panics with an error wrapping errors.ErrUnsupportedType.
func Natural[T any](a, b T) int {
	if lt, ok := any(a).(lessThaner[T]); ok {
		if lt.LessThan(b) {
			return -1
		}

		if gt, ok := any(b).(lessThaner[T]); ok && gt.LessThan(a) {
			return 1
		}

		return 0
	}

	left, right := any(a), any(b)

	if x, ok := left.(time.Time); ok {
		if y, ok := right.(time.Time); ok {
			return x.Compare(y)
		}
	}

	if result, ok := compareReflect(reflect.ValueOf(left), reflect.ValueOf(right)); ok {
		return result
	}

	panic(fmt.Errorf("%w: cannot order %T and %T", errors.ErrUnsupportedType, left, right))
}

func compareReflect(x, y reflect.Value) (int, bool) {
	if !x.IsValid() || !y.IsValid() {
		return 0, false
	}

	kx, ky := kindOf(x), kindOf(y)

	switch {
	case kx == reflect.String && ky == reflect.String:
		return cmp.Compare(x.String(), y.String()), true
	case kx == reflect.Int && ky == reflect.Int:
		return cmp.Compare(x.Int(), y.Int()), true
	case kx == reflect.Uint && ky == reflect.Uint:
		return cmp.Compare(x.Uint(), y.Uint()), true
	}

	fx, okX := toFloat(x, kx)
	fy, okY := toFloat(y, ky)

	if !okX || !okY {
		return 0, false
	}

	return cmp.Compare(fx, fy), true
}

// kindOf collapses the sized numeric kinds into Int, Uint and Float.
func kindOf(v reflect.Value) reflect.Kind {
	switch v.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	default:
		return v.Kind()
	}
}

func toFloat(v reflect.Value, kind reflect.Kind) (float64, bool) {
	switch kind { //nolint:exhaustive
	case reflect.Int:
		return float64(v.Int()), true
	case reflect.Uint:
		return float64(v.Uint()), true
	case reflect.Float64:
		return v.Float(), true
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}

		return 0, true
	default:
		return 0, false
	}
}
