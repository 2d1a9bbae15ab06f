package lens

import (
	"errors"

	"github.com/PNW-TechPros/natural-lenses/maybe"
)

// slot is the transient pairing of one container instance with one step
// during a single resolution; slots are rebuilt on every call and never
// persisted.
type slot struct {
	container any
	exists    bool
	step      any
}

// resolve walks l's steps against subject, recording one slot per step and
// returning the final optional value. A missing or nil container makes every
// deeper slot missing as well.
func (l *Lens) resolve(subject any) ([]slot, maybe.Maybe[any]) {
	slots := make([]slot, len(l.steps))
	cur := maybe.Just[any](subject)
	for i, st := range l.steps {
		c, ok := cur.Get()
		slots[i] = slot{container: c, exists: ok && c != nil, step: st}
		if !ok {
			continue
		}
		cur = probeStep(st, c)
	}
	return slots, cur
}

// SetInClone returns a clone of subject with l's slot set to newValue,
// synthesizing missing intermediate containers along the way. If the slot
// already holds newValue (reference identity), subject is returned as is,
// with nothing cloned.
func (l *Lens) SetInClone(subject, newValue any) (any, error) {
	slots, cur := l.resolve(subject)
	if v, ok := cur.Get(); ok && same(v, newValue) {
		return subject, nil
	}
	return l.rebuild(subject, slots, maybe.Just[any](newValue))
}

// XformInClone returns a clone of subject with l's slot replaced by
// fn(currentValue). An absent slot leaves subject unchanged with fn uncalled
// unless AddMissing is given, in which case intermediates are synthesized and
// fn receives nil. A transform returning the current value (reference
// identity) leaves subject unchanged.
func (l *Lens) XformInClone(subject any, fn func(any) any, opts ...XformOption) (any, error) {
	o := applyXformOptions(opts)
	slots, cur := l.resolve(subject)
	if v, ok := cur.Get(); ok {
		newValue := fn(v)
		if same(v, newValue) {
			return subject, nil
		}
		return l.rebuild(subject, slots, maybe.Just[any](newValue))
	}
	if !o.addMissing {
		return subject, nil
	}
	return l.rebuild(subject, slots, maybe.Just[any](fn(nil)))
}

// XformInCloneMaybe is the optional-value transform: fn receives the current
// slot state (Nothing when absent) and returns the desired state. Returning
// Nothing removes the slot (a non-final sequence element leaves a hole);
// returning Just sets it, synthesizing intermediates when needed. Returning
// the state the slot is already in — Nothing for an absent slot, or the same
// Just value — returns subject unchanged.
func (l *Lens) XformInCloneMaybe(subject any, fn func(maybe.Maybe[any]) maybe.Maybe[any]) (any, error) {
	slots, cur := l.resolve(subject)
	newVal := fn(cur)
	if nv, ok := newVal.Get(); ok {
		if ov, present := cur.Get(); present && same(ov, nv) {
			return subject, nil
		}
		return l.rebuild(subject, slots, maybe.Just[any](nv))
	}
	if cur.IsNothing() {
		return subject, nil
	}
	return l.rebuild(subject, slots, maybe.Nothing[any]())
}

// rebuild rewrites l's path bottom-up: missing containers are synthesized
// top-down first, then the final slot is set to newVal (or removed when
// newVal is Nothing), and each enclosing slot is cloned with its child's
// rebuilt container, terminating at the root.
func (l *Lens) rebuild(subject any, slots []slot, newVal maybe.Maybe[any]) (any, error) {
	n := len(slots)
	if n == 0 {
		// The empty lens addresses the subject itself.
		v, _ := newVal.Get()
		return v, nil
	}
	cs := make([]any, n)
	for i := range slots {
		if slots[i].exists {
			cs[i] = slots[i].container
			continue
		}
		c, ok, err := l.constructFor(i)
		if err != nil {
			return nil, err
		}
		if !ok {
			return subject, nil
		}
		cs[i] = c
	}
	out, err := applyStep(l.steps[n-1], cs[n-1], newVal)
	if err != nil {
		return l.noopOrError(subject, err)
	}
	for i := n - 2; i >= 0; i-- {
		out, err = applyStep(l.steps[i], cs[i], maybe.Just[any](out))
		if err != nil {
			return l.noopOrError(subject, err)
		}
	}
	return out, nil
}

// constructFor synthesizes the missing container that step i indexes into.
// The second return value is false when synthesis is disabled at this
// position by a CustomStep without Construct.
func (l *Lens) constructFor(i int) (any, bool, error) {
	if cs, ok := l.steps[i].(*CustomStep); ok {
		if cs.Construct == nil {
			return nil, false, nil
		}
		return cs.Construct(), true, nil
	}
	f := l.factory
	if f == nil {
		f = DefaultFactory
	}
	c, err := f.Construct(l.steps[:i+1])
	if err != nil {
		return nil, false, &PathError{Path: l.path()[:i+1], Err: err}
	}
	return c, true, nil
}

func (l *Lens) noopOrError(subject any, err error) (any, error) {
	if errors.Is(err, errMutationDisabled) {
		return subject, nil
	}
	return nil, &PathError{Path: l.path(), Err: err}
}
