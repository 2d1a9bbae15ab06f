package containers

import (
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// EmptyStore is an empty key-value store keyed by Equal/Hash equality.
var EmptyStore = hashmap.New(Equal, Hash)

// MakeStore creates a store from arguments that are alternately keys and
// values. It panics if the number of arguments is odd.
func MakeStore(a ...any) hashmap.Map {
	if len(a)%2 == 1 {
		panic("Odd number of arguments to MakeStore")
	}
	m := EmptyStore
	for i := 0; i < len(a); i += 2 {
		m = m.Assoc(a[i], a[i+1])
	}
	return m
}

// EmptyList is an empty persistent list.
var EmptyList = vector.Empty

// MakeList creates a new persistent list from values.
func MakeList(vs ...any) vector.Vector {
	vec := vector.Empty
	for _, v := range vs {
		vec = vec.Cons(v)
	}
	return vec
}
