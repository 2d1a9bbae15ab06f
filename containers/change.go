package containers

// A Change describes one structural difference to apply while cloning a
// container: Set a key to a value, Remove a key, or Pop the last element of a
// sequence.
type Change interface {
	change()
}

// Set associates Key with Value in the clone.
type Set struct {
	Key   any
	Value any
}

// Remove dissociates Key in the clone.
type Remove struct {
	Key any
}

// Pop removes the last element of a sequence in the clone, shrinking it.
type Pop struct{}

func (Set) change()    {}
func (Remove) change() {}
func (Pop) change()    {}

// CloneWith returns a clone of c with one change applied. It is the
// change-encoded form of Assoc and Dissoc.
func CloneWith(c any, ch Change) (any, error) {
	switch ch := ch.(type) {
	case Set:
		return Assoc(c, ch.Key, ch.Value)
	case Remove:
		return Dissoc(c, ch.Key)
	case Pop:
		n := Len(c)
		if n <= 0 {
			return c, nil
		}
		return Dissoc(c, n-1)
	default:
		return nil, CloneError{"clone", c}
	}
}
