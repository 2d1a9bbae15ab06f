package containers

import (
	"reflect"
	"sync"
)

// Capability is the probe/clone capability a foreign container type supplies
// to participate in the protocol without implementing the interfaces in this
// package. Nil fields leave the corresponding operation unsupported. Empty,
// when present, lets container factories synthesize the type for missing
// intermediate containers.
type Capability struct {
	Probe  func(c, k any) (any, bool)
	Assoc  func(c, k, v any) any
	Dissoc func(c, k any) any
	Empty  func() any
}

var (
	registryMutex sync.RWMutex
	registry      = make(map[reflect.Type]Capability)
)

// Register installs cap for the container type t. Registration is idempotent:
// if t already has a capability, the existing one is kept and Register
// returns false. Registration is meant to happen once, at process start;
// lookups are read-mostly thereafter.
func Register(t reflect.Type, cap Capability) bool {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if _, ok := registry[t]; ok {
		return false
	}
	registry[t] = cap
	return true
}

// Registered returns the capability registered for t, if any.
func Registered(t reflect.Type) (Capability, bool) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	cap, ok := registry[t]
	return cap, ok
}

func capabilityOf(c any) (Capability, bool) {
	if c == nil {
		return Capability{}, false
	}
	return Registered(reflect.TypeOf(c))
}
