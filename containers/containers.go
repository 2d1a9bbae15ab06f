// Package containers implements the container capability protocol: a small
// set of package-level dispatch functions that probe and clone heterogeneous
// container values without mutating them.
//
// Four container kinds are built in: the record (map[string]any, string keys),
// the sequence ([]any, integer keys counted from the end when negative, with
// sparse holes), the key-value store (hashmap.Map and map[any]any, arbitrary
// keys), and the persistent sequence (vector.Vector). Other types participate
// either structurally, by implementing the capability interfaces in this
// package, or nominally, by registering a Capability for their type.
//
// Every clone operation returns a fresh container sharing all untouched
// branches with the original; the original is never modified.
package containers

import (
	"reflect"

	"github.com/PNW-TechPros/natural-lenses/maybe"
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Prober wraps the Probe method.
type Prober interface {
	// Probe retrieves the value corresponding to the specified key in the
	// container. It returns the value (if any), and whether it actually
	// exists.
	Probe(k any) (v any, ok bool)
}

// Probe retrieves the optional value at key k in container c. It is
// implemented for the built-in container kinds and for types satisfying the
// Prober interface or carrying a registered Capability. Absence is never an
// error: probing a non-container, a missing key, an out-of-range index or a
// sequence hole all yield Nothing.
func Probe(c, k any) maybe.Maybe[any] {
	switch c := c.(type) {
	case nil:
		return maybe.Nothing[any]()
	case map[string]any:
		key, ok := recordKey(k)
		if !ok {
			return maybe.Nothing[any]()
		}
		v, ok := c[key]
		if !ok {
			return maybe.Nothing[any]()
		}
		return maybe.Just(v)
	case []any:
		i, ok := seqIndex(k, len(c))
		if !ok || IsHole(c[i]) {
			return maybe.Nothing[any]()
		}
		return maybe.Just(c[i])
	case map[any]any:
		if !comparableKey(k) {
			return maybe.Nothing[any]()
		}
		v, ok := c[k]
		if !ok {
			return maybe.Nothing[any]()
		}
		return maybe.Just(v)
	case hashmap.Map:
		v, ok := c.Index(k)
		if !ok {
			return maybe.Nothing[any]()
		}
		return maybe.Just(v)
	case vector.Vector:
		i, ok := seqIndex(k, c.Len())
		if !ok {
			return maybe.Nothing[any]()
		}
		v, _ := c.Index(i)
		if IsHole(v) {
			return maybe.Nothing[any]()
		}
		return maybe.Just(v)
	case Prober:
		v, ok := c.Probe(k)
		if !ok {
			return maybe.Nothing[any]()
		}
		return maybe.Just(v)
	default:
		if cb, ok := capabilityOf(c); ok && cb.Probe != nil {
			if v, ok := cb.Probe(c, k); ok {
				return maybe.Just(v)
			}
		}
		return maybe.Nothing[any]()
	}
}

func comparableKey(k any) bool {
	return k == nil || reflect.TypeOf(k).Comparable()
}
