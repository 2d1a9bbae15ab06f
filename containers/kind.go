package containers

import (
	"fmt"

	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, a concept similar to type but
// collapsing all container representations of one shape. It is implemented
// for the builtin types bool and string, the built-in container kinds, and
// types implementing the Kinder interface. For other types, it returns the Go
// type name of the argument preceded by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case Kinder:
		return v.Kind()
	case bool:
		return "bool"
	case string:
		return "string"
	case []any:
		return "seq"
	case vector.Vector:
		return "list"
	case map[string]any:
		return "record"
	case map[any]any:
		return "store"
	case hashmap.Map:
		return "store"
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
