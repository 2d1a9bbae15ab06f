package containers

import (
	"reflect"

	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must
	// have the same hash code.
	Equal(other any) bool
}

// Equal returns whether two values are structurally equal. It is implemented
// for nil, the builtin types bool, int, float64 and string, the built-in
// container kinds (compared element-wise, holes equal only to holes), and
// types implementing the Equaler interface. For other types, it falls back to
// reflect.DeepEqual.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case int:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case holeMarker:
		return IsHole(y)
	case []any:
		yy, ok := y.([]any)
		return ok && equalSeq(x, yy)
	case map[string]any:
		yy, ok := y.(map[string]any)
		return ok && equalRecord(x, yy)
	case map[any]any:
		yy, ok := y.(map[any]any)
		return ok && equalNativeStore(x, yy)
	case vector.Vector:
		yy, ok := y.(vector.Vector)
		return ok && equalList(x, yy)
	case hashmap.Map:
		yy, ok := y.(hashmap.Map)
		return ok && equalStore(x, yy)
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}

func equalSeq(x, y []any) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

func equalRecord(x, y map[string]any) bool {
	if len(x) != len(y) {
		return false
	}
	for k, vx := range x {
		vy, ok := y[k]
		if !ok || !Equal(vx, vy) {
			return false
		}
	}
	return true
}

func equalNativeStore(x, y map[any]any) bool {
	if len(x) != len(y) {
		return false
	}
	for k, vx := range x {
		vy, ok := y[k]
		if !ok || !Equal(vx, vy) {
			return false
		}
	}
	return true
}

func equalList(x, y vector.Vector) bool {
	if x.Len() != y.Len() {
		return false
	}
	ix := x.Iterator()
	iy := y.Iterator()
	for ix.HasElem() && iy.HasElem() {
		if !Equal(ix.Elem(), iy.Elem()) {
			return false
		}
		ix.Next()
		iy.Next()
	}
	return true
}

func equalStore(x, y hashmap.Map) bool {
	if x.Len() != y.Len() {
		return false
	}
	for it := x.Iterator(); it.HasElem(); it.Next() {
		k, vx := it.Elem()
		vy, ok := y.Index(k)
		if !ok || !Equal(vx, vy) {
			return false
		}
	}
	return true
}
