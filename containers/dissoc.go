package containers

import (
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Dissocer wraps the Dissoc method.
type Dissocer interface {
	// Dissoc returns a slightly modified version of the receiver with key k
	// dissociated with any value.
	Dissoc(k any) any
}

// Dissoc returns a clone of container c with key k dissociated with any
// value. Removing the last element of a sequence shrinks it by one; removing
// an earlier element leaves a hole, preserving the length. Removing a key
// that is not present returns c unchanged, since absence is not an error.
// A value with no cloning path yields a CloneError.
func Dissoc(c, k any) (any, error) {
	switch c := c.(type) {
	case map[string]any:
		key, ok := recordKey(k)
		if !ok {
			return c, nil
		}
		if _, present := c[key]; !present {
			return c, nil
		}
		clone := make(map[string]any, len(c)-1)
		for kk, vv := range c {
			if kk != key {
				clone[kk] = vv
			}
		}
		return clone, nil
	case []any:
		i, ok := seqIndex(k, len(c))
		if !ok {
			return c, nil
		}
		if i == len(c)-1 {
			clone := make([]any, i)
			copy(clone, c)
			return clone, nil
		}
		clone := make([]any, len(c))
		copy(clone, c)
		clone[i] = Hole
		return clone, nil
	case map[any]any:
		if !comparableKey(k) {
			return c, nil
		}
		if _, present := c[k]; !present {
			return c, nil
		}
		clone := make(map[any]any, len(c)-1)
		for kk, vv := range c {
			if kk != k {
				clone[kk] = vv
			}
		}
		return clone, nil
	case hashmap.Map:
		return c.Dissoc(k), nil
	case vector.Vector:
		i, ok := seqIndex(k, c.Len())
		if !ok {
			return c, nil
		}
		if i == c.Len()-1 {
			return c.Pop(), nil
		}
		return c.Assoc(i, Hole), nil
	case Dissocer:
		return c.Dissoc(k), nil
	default:
		if cb, ok := capabilityOf(c); ok && cb.Dissoc != nil {
			return cb.Dissoc(c, k), nil
		}
		return nil, CloneError{"dissoc", c}
	}
}
