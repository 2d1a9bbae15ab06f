package containers

import "fmt"

// CloneError is returned when a mutating operation is attempted on a value
// that offers no cloning path: it is not a built-in container kind, does not
// implement the capability interfaces, and has no registered Capability.
type CloneError struct {
	Op        string
	Container any
}

func (e CloneError) Error() string {
	return fmt.Sprintf("cannot %s: %s does not support cloning", e.Op, Kind(e.Container))
}

// KeyError is returned when a key cannot address a container that otherwise
// supports cloning, e.g. a struct-typed key against a record or a negative
// sequence index reaching before the first element.
type KeyError struct {
	Key       any
	Container any
}

func (e KeyError) Error() string {
	return fmt.Sprintf("key %v cannot address %s", e.Key, Kind(e.Container))
}
