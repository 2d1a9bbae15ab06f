package lens

import "github.com/PNW-TechPros/natural-lenses/maybe"

// Optic is the contract shared by every composable accessor in this package:
// single-path lenses, multifocals, and fused chains. Optics are immutable
// once constructed; every operation is a pure function of its arguments, and
// mutating operations return a clone of the subject that shares all branches
// the optic did not touch.
type Optic interface {
	// Present reports whether the optic resolves to a value in subject.
	Present(subject any) bool
	// Get returns the value the optic resolves to in subject, or nil when
	// absent. With a non-empty tail, the resolved value must itself be an
	// Optic: it is invoked with tail[0] as its subject and tail[1:] as its
	// tail, and any other resolved value yields nil.
	Get(subject any, tail ...any) any
	// GetMaybe is Get in optional-value form: Nothing when absent, including
	// the case of a non-Optic value resolved under a non-empty tail.
	GetMaybe(subject any, tail ...any) maybe.Maybe[any]
	// SetInClone returns a clone of subject with the optic's slot set to
	// newValue. If the slot already holds newValue (reference identity), the
	// subject is returned unchanged, without cloning anything.
	SetInClone(subject, newValue any) (any, error)
	// XformInClone returns a clone of subject with the optic's slot replaced
	// by fn applied to its current value. When the slot is absent the subject
	// is returned unchanged and fn is not called, unless AddMissing is given.
	XformInClone(subject any, fn func(any) any, opts ...XformOption) (any, error)
	// XformInCloneMaybe is the optional-value form of XformInClone: fn
	// receives Nothing when the slot is absent, and returning Nothing removes
	// the slot. Returning the state the slot is already in leaves the subject
	// unchanged.
	XformInCloneMaybe(subject any, fn func(maybe.Maybe[any]) maybe.Maybe[any]) (any, error)
}

// XformOption customizes a transform operation.
type XformOption func(*xformOpts)

type xformOpts struct {
	addMissing bool
}

// AddMissing makes XformInClone synthesize missing intermediate containers
// and call the transform with nil when the slot is absent.
func AddMissing() XformOption {
	return func(o *xformOpts) { o.addMissing = true }
}

func applyXformOptions(opts []XformOption) xformOpts {
	var o xformOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// tailGet and tailGetMaybe implement the tail-chaining contract shared by all
// optics: with a non-empty tail, the resolved value must itself be an Optic,
// which is invoked with the first tail element as its subject.

func tailGet(m maybe.Maybe[any], tail []any) any {
	v, ok := m.Get()
	if !ok {
		return nil
	}
	if o, ok := v.(Optic); ok {
		return o.Get(tail[0], tail[1:]...)
	}
	return nil
}

func tailGetMaybe(m maybe.Maybe[any], tail []any) maybe.Maybe[any] {
	v, ok := m.Get()
	if !ok {
		return maybe.Nothing[any]()
	}
	if o, ok := v.(Optic); ok {
		return o.GetMaybe(tail[0], tail[1:]...)
	}
	return maybe.Nothing[any]()
}
