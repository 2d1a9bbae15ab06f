package lens

import (
	"github.com/PNW-TechPros/natural-lenses/containers"
)

// A ContainerFactory decides the shape of a missing intermediate container.
// Construct receives the key path from the root up to and including the key
// that will index into the new container, and returns an empty container for
// that key. Implementations must not retain or modify keyPath.
type ContainerFactory interface {
	Construct(keyPath []any) (any, error)
}

// DefaultFactory implements the default construction rule: an integer-valued
// trailing key gets a sequence, any other key a record.
var DefaultFactory ContainerFactory = defaultFactory{}

type defaultFactory struct{}

func (defaultFactory) Construct(keyPath []any) (any, error) {
	if containers.IsNumericKey(keyPath[len(keyPath)-1]) {
		return []any{}, nil
	}
	return map[string]any{}, nil
}

// KindFactory overrides the default rule per key kind, swapping in alternate
// sequence and record implementations. Nil fields fall back to the default
// shapes.
type KindFactory struct {
	NewSequence func() any
	NewRecord   func() any
}

func (f KindFactory) Construct(keyPath []any) (any, error) {
	if containers.IsNumericKey(keyPath[len(keyPath)-1]) {
		if f.NewSequence != nil {
			return f.NewSequence(), nil
		}
		return []any{}, nil
	}
	if f.NewRecord != nil {
		return f.NewRecord(), nil
	}
	return map[string]any{}, nil
}

// PersistentFactory constructs persistent containers: missing sequences
// become persistent lists and missing records become key-value stores, so a
// whole synthesized subtree is structurally shared from the start.
var PersistentFactory ContainerFactory = &KindFactory{
	NewSequence: func() any { return containers.EmptyList },
	NewRecord:   func() any { return containers.EmptyStore },
}

// PathFactory overrides construction for exact key paths: For is consulted
// first and may decline, in which case Else (or the default rule) decides.
type PathFactory struct {
	For  func(keyPath []any) (any, bool)
	Else ContainerFactory
}

func (f PathFactory) Construct(keyPath []any) (any, error) {
	if f.For != nil {
		if c, ok := f.For(keyPath); ok {
			return c, nil
		}
	}
	if f.Else != nil {
		return f.Else.Construct(keyPath)
	}
	return DefaultFactory.Construct(keyPath)
}

// A Factory mints lenses bound to one container construction policy, so a
// family of lenses shares it.
type Factory struct {
	Containers ContainerFactory
}

// Lens returns a Lens over the given path steps, bound to the factory's
// construction policy.
func (f Factory) Lens(steps ...any) *Lens {
	l := New(steps...)
	l.factory = f.Containers
	return l
}
