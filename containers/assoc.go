package containers

import (
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Assocer wraps the Assoc method.
type Assocer interface {
	// Assoc returns a slightly modified version of the receiver with key k
	// associated with value v.
	Assoc(k, v any) any
}

// Assoc returns a clone of container c with key k associated with value v.
// The original is never modified and untouched branches are shared between
// the original and the clone.
//
// For sequences, a negative index counts from the end; an index equal to the
// length appends, and an index past the length extends the sequence with
// holes. An index reaching before the first element is a KeyError. For other
// container kinds, the key is set outright. A value with no cloning path
// yields a CloneError.
func Assoc(c, k, v any) (any, error) {
	switch c := c.(type) {
	case map[string]any:
		key, ok := recordKey(k)
		if !ok {
			return nil, KeyError{k, c}
		}
		clone := make(map[string]any, len(c)+1)
		for kk, vv := range c {
			clone[kk] = vv
		}
		clone[key] = v
		return clone, nil
	case []any:
		i, ok := intKey(k)
		if !ok {
			return nil, KeyError{k, c}
		}
		if i < 0 {
			i += len(c)
			if i < 0 {
				return nil, KeyError{k, c}
			}
		}
		n := len(c)
		if i >= n {
			n = i + 1
		}
		clone := make([]any, n)
		copy(clone, c)
		for j := len(c); j < n; j++ {
			clone[j] = Hole
		}
		clone[i] = v
		return clone, nil
	case map[any]any:
		if !comparableKey(k) {
			return nil, KeyError{k, c}
		}
		clone := make(map[any]any, len(c)+1)
		for kk, vv := range c {
			clone[kk] = vv
		}
		clone[k] = v
		return clone, nil
	case hashmap.Map:
		return c.Assoc(k, v), nil
	case vector.Vector:
		i, ok := intKey(k)
		if !ok {
			return nil, KeyError{k, c}
		}
		if i < 0 {
			i += c.Len()
			if i < 0 {
				return nil, KeyError{k, c}
			}
		}
		switch {
		case i < c.Len():
			return c.Assoc(i, v), nil
		case i == c.Len():
			return c.Cons(v), nil
		default:
			clone := c
			for j := c.Len(); j < i; j++ {
				clone = clone.Cons(Hole)
			}
			return clone.Cons(v), nil
		}
	case Assocer:
		return c.Assoc(k, v), nil
	default:
		if cb, ok := capabilityOf(c); ok && cb.Assoc != nil {
			return cb.Assoc(c, k, v), nil
		}
		return nil, CloneError{"assoc", c}
	}
}
