package containers

import (
	"errors"

	"github.com/xiaq/persistent/vector"
)

// Iterator wraps the Iterate method.
type Iterator interface {
	// Iterate calls the passed function with each value within the receiver.
	// The iteration is aborted if the function returns false.
	Iterate(func(v any) bool)
}

type listIterable interface {
	Iterator() vector.Iterator
}

var _ listIterable = vector.Vector(nil)

// Iterate iterates the supplied value, calling the supplied function on each
// of its elements; the function can return false to break the iteration. It
// is implemented for sequences (holes included, as the Hole marker), the
// persistent list, and types satisfying the Iterator interface. For other
// types it doesn't do anything and returns an error.
func Iterate(v any, f func(any) bool) error {
	switch v := v.(type) {
	case Iterator:
		v.Iterate(f)
	case []any:
		for _, elem := range v {
			if !f(elem) {
				break
			}
		}
	case listIterable:
		for it := v.Iterator(); it.HasElem(); it.Next() {
			if !f(it.Elem()) {
				break
			}
		}
	default:
		return errors.New(Kind(v) + " cannot be iterated")
	}
	return nil
}

// Iterable reports whether Iterate supports v.
func Iterable(v any) bool {
	switch v.(type) {
	case Iterator, []any, listIterable:
		return true
	}
	return false
}

// Collect collects all elements of an iterable value into a slice.
func Collect(it any) ([]any, error) {
	var vs []any
	if n := Len(it); n >= 0 {
		vs = make([]any, 0, n)
	}
	err := Iterate(it, func(v any) bool {
		vs = append(vs, v)
		return true
	})
	return vs, err
}
