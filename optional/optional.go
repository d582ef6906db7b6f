// Package optional provides a Value type for results that may be absent,
// such as the minimum of an empty slice or an index past the end.
// A Value is conceptually a set of size zero or one.
package optional

import (
	"fmt"
	"iter"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// From builds a Value out of a comma-ok pair.
func From[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// All yields the value if present, or nothing if empty.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value if present, or panics if empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the contained value, if any.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
