package containers

import (
	"math"

	"github.com/xiaq/persistent/hash"
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value. It is implemented for the builtin
// types bool, int, float64 and string, the built-in container kinds, and
// types satisfying the Hasher interface. For other values it returns 0,
// which is OK in terms of correctness.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return hashUint64(uint64(v))
	case float64:
		return hashUint64(math.Float64bits(v))
	case string:
		return hash.String(v)
	case holeMarker:
		return 'h'
	case []any:
		h := hash.DJBInit
		for _, elem := range v {
			h = hash.DJBCombine(h, Hash(elem))
		}
		return h
	case map[string]any:
		var h uint32
		for k, vv := range v {
			// Combine with addition: map iteration order is unstable.
			h += hash.DJBCombine(Hash(k), Hash(vv))
		}
		return h
	case map[any]any:
		var h uint32
		for k, vv := range v {
			h += hash.DJBCombine(Hash(k), Hash(vv))
		}
		return h
	case vector.Vector:
		h := hash.DJBInit
		for it := v.Iterator(); it.HasElem(); it.Next() {
			h = hash.DJBCombine(h, Hash(it.Elem()))
		}
		return h
	case hashmap.Map:
		var h uint32
		for it := v.Iterator(); it.HasElem(); it.Next() {
			k, vv := it.Elem()
			h += hash.DJBCombine(Hash(k), Hash(vv))
		}
		return h
	case Hasher:
		return v.Hash()
	}
	return 0
}

func hashUint64(u uint64) uint32 {
	return hash.DJBCombine(hash.DJBCombine(hash.DJBInit, uint32(u)), uint32(u>>32))
}
