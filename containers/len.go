package containers

import (
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Lener wraps the Len method.
type Lener interface {
	// Len computes the length of the receiver.
	Len() int
}

var (
	_ Lener = vector.Vector(nil)
	_ Lener = hashmap.Map(nil)
)

// Len returns the length of the value, or -1 if the value does not have a
// well-defined length. It is implemented for the builtin string type, the
// built-in container kinds, and types satisfying the Lener interface.
// Sequence holes count towards the length.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		return len(v)
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	case map[any]any:
		return len(v)
	case Lener:
		return v.Len()
	}
	return -1
}
