package lens

import (
	"github.com/PNW-TechPros/natural-lenses/maybe"
)

// FuseLenses fuses plain lenses into a single Lens by concatenating their
// step sequences, the cheapest representation of sequential composition.
// Every argument must be a plain lens: either bound to no construction
// policy, or bound to the same one. Anything else is ErrUnfusable; use Fuse
// for heterogeneous optics.
func FuseLenses(lenses ...*Lens) (*Lens, error) {
	var steps []any
	var factory ContainerFactory
	for _, l := range lenses {
		if l == nil {
			return nil, ErrUnfusable
		}
		if l.factory != nil {
			if factory == nil {
				factory = l.factory
			} else if !same(factory, l.factory) {
				return nil, ErrUnfusable
			}
		}
		steps = append(steps, l.steps...)
	}
	return &Lens{steps: steps, factory: factory}, nil
}

// Fuse combines optics into one optic applied in sequence: the first
// argument receives the subject, and each result feeds the next. When every
// argument is a plain lens the result is a single fused Lens; otherwise it
// is a Chain.
func Fuse(optics ...Optic) Optic {
	lenses := make([]*Lens, 0, len(optics))
	for _, o := range optics {
		l, ok := o.(*Lens)
		if !ok {
			lenses = nil
			break
		}
		lenses = append(lenses, l)
	}
	if lenses != nil {
		if fused, err := FuseLenses(lenses...); err == nil {
			return fused
		}
	}
	return &Chain{optics: append([]Optic(nil), optics...)}
}

// A Chain is the fusion of heterogeneous optics. Member 0 receives the
// subject and each member's result feeds the next; reads short-circuit to
// absent the moment any member resolves to Nothing, without invoking the
// members after it. Mutations recurse member by member and rebuild on the
// way back out, so no container is cloned except along this single chain.
// The empty chain is the identity optic.
type Chain struct {
	optics []Optic
}

var _ Optic = (*Chain)(nil)

// Present reports whether the whole chain resolves in subject. It is
// vacuously true for the empty chain.
func (c *Chain) Present(subject any) bool {
	return c.GetMaybe(subject).IsJust()
}

// GetMaybe resolves the chain against subject member by member.
func (c *Chain) GetMaybe(subject any, tail ...any) maybe.Maybe[any] {
	cur := maybe.Just[any](subject)
	for _, o := range c.optics {
		v, ok := cur.Get()
		if !ok {
			return maybe.Nothing[any]()
		}
		cur = o.GetMaybe(v)
	}
	if len(tail) > 0 {
		return tailGetMaybe(cur, tail)
	}
	return cur
}

// Get returns the chain's value in subject, or nil when absent.
func (c *Chain) Get(subject any, tail ...any) any {
	m := c.GetMaybe(subject)
	if len(tail) > 0 {
		return tailGet(m, tail)
	}
	v, _ := m.Get()
	return v
}

// SetInClone sets the chain's final slot to newValue. Intermediate members
// must resolve for the write to take place; an absent intermediate leaves
// subject unchanged.
func (c *Chain) SetInClone(subject, newValue any) (any, error) {
	if len(c.optics) == 0 {
		if same(subject, newValue) {
			return subject, nil
		}
		return newValue, nil
	}
	return c.setIn(subject, 0, newValue)
}

func (c *Chain) setIn(subject any, i int, newValue any) (any, error) {
	if i == len(c.optics)-1 {
		return c.optics[i].SetInClone(subject, newValue)
	}
	var innerErr error
	out, err := c.optics[i].XformInClone(subject, func(v any) any {
		r, err := c.setIn(v, i+1, newValue)
		if err != nil {
			innerErr = err
			return v
		}
		return r
	})
	if innerErr != nil {
		return nil, innerErr
	}
	return out, err
}

// XformInClone transforms the chain's final slot. Only the final member
// receives the caller's options: an absent intermediate always leaves
// subject unchanged.
func (c *Chain) XformInClone(subject any, fn func(any) any, opts ...XformOption) (any, error) {
	if len(c.optics) == 0 {
		newValue := fn(subject)
		if same(subject, newValue) {
			return subject, nil
		}
		return newValue, nil
	}
	return c.xform(subject, 0, fn, opts)
}

func (c *Chain) xform(subject any, i int, fn func(any) any, opts []XformOption) (any, error) {
	if i == len(c.optics)-1 {
		return c.optics[i].XformInClone(subject, fn, opts...)
	}
	var innerErr error
	out, err := c.optics[i].XformInClone(subject, func(v any) any {
		r, err := c.xform(v, i+1, fn, opts)
		if err != nil {
			innerErr = err
			return v
		}
		return r
	})
	if innerErr != nil {
		return nil, innerErr
	}
	return out, err
}

// XformInCloneMaybe transforms the chain's final slot in optional-value form.
// The final member receives fn; intermediate members must resolve.
func (c *Chain) XformInCloneMaybe(subject any, fn func(maybe.Maybe[any]) maybe.Maybe[any]) (any, error) {
	if len(c.optics) == 0 {
		newVal := fn(maybe.Just[any](subject))
		if v, ok := newVal.Get(); ok {
			if same(subject, v) {
				return subject, nil
			}
			return v, nil
		}
		return nil, nil
	}
	return c.xformMaybe(subject, 0, fn)
}

func (c *Chain) xformMaybe(subject any, i int, fn func(maybe.Maybe[any]) maybe.Maybe[any]) (any, error) {
	if i == len(c.optics)-1 {
		return c.optics[i].XformInCloneMaybe(subject, fn)
	}
	var innerErr error
	out, err := c.optics[i].XformInClone(subject, func(v any) any {
		r, err := c.xformMaybe(v, i+1, fn)
		if err != nil {
			innerErr = err
			return v
		}
		return r
	})
	if innerErr != nil {
		return nil, innerErr
	}
	return out, err
}
