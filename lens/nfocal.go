package lens

import (
	"fmt"
	"sort"

	"github.com/PNW-TechPros/natural-lenses/containers"
	"github.com/PNW-TechPros/natural-lenses/maybe"
)

// Nfocal is a multifocal optic: it aggregates several member optics into one
// optic whose value is a sequence or a record of the members' values against
// the same subject. The aggregate keeps the shape the multifocal was
// constructed with — a sequence-shaped aggregate stays a sequence, with holes
// where members are absent, and a record-shaped aggregate omits the keys of
// absent members entirely.
type Nfocal struct {
	seq     []Optic
	rec     map[string]Optic
	recKeys []string
}

var _ Optic = (*Nfocal)(nil)

// NewSequenceNfocal returns a sequence-shaped multifocal over members, whose
// aggregate value carries member i's value (or a hole) at index i.
func NewSequenceNfocal(members ...Optic) (*Nfocal, error) {
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("multifocal member %d is nil", i)
		}
	}
	return &Nfocal{seq: append([]Optic(nil), members...)}, nil
}

// NewRecordNfocal returns a record-shaped multifocal over named members,
// whose aggregate value carries each present member's value under its name.
func NewRecordNfocal(members map[string]Optic) (*Nfocal, error) {
	rec := make(map[string]Optic, len(members))
	keys := make([]string, 0, len(members))
	for k, m := range members {
		if m == nil {
			return nil, fmt.Errorf("multifocal member %q is nil", k)
		}
		rec[k] = m
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Nfocal{rec: rec, recKeys: keys}, nil
}

// MembersPresent returns the members that resolve in subject: ascending
// indices for a sequence-shaped multifocal, sorted keys for a record-shaped
// one.
func (n *Nfocal) MembersPresent(subject any) []any {
	var present []any
	n.eachMember(func(key any, o Optic) {
		if o.Present(subject) {
			present = append(present, key)
		}
	})
	return present
}

// Present reports whether at least one member resolves in subject.
func (n *Nfocal) Present(subject any) bool {
	ok := false
	n.eachMember(func(_ any, o Optic) {
		ok = ok || o.Present(subject)
	})
	return ok
}

// GetMaybe evaluates every member against subject and aggregates the results
// per the constructed shape. The result is always an aggregate-marked Just:
// per-member absence is encoded inside the aggregate (holes in a sequence,
// omitted keys in a record), not by Nothing.
func (n *Nfocal) GetMaybe(subject any, tail ...any) maybe.Maybe[any] {
	var agg any
	if n.seq != nil || n.rec == nil {
		vs := make([]any, len(n.seq))
		for i, o := range n.seq {
			if v, ok := o.GetMaybe(subject).Get(); ok {
				vs[i] = v
			} else {
				vs[i] = containers.Hole
			}
		}
		agg = vs
	} else {
		vs := make(map[string]any)
		for _, k := range n.recKeys {
			if v, ok := n.rec[k].GetMaybe(subject).Get(); ok {
				vs[k] = v
			}
		}
		agg = vs
	}
	res := maybe.JustAggregate(agg)
	if len(tail) > 0 {
		return tailGetMaybe(res, tail)
	}
	return res
}

// Get returns the aggregate value of the members against subject.
func (n *Nfocal) Get(subject any, tail ...any) any {
	m := n.GetMaybe(subject)
	if len(tail) > 0 {
		return tailGet(m, tail)
	}
	v, _ := m.Get()
	return v
}

// XformPair names a member and the transform to apply through it.
type XformPair struct {
	Key any
	Fn  func(any) any
}

// XformMaybePair names a member and the optional-value transform to apply
// through it.
type XformMaybePair struct {
	Key any
	Fn  func(maybe.Maybe[any]) maybe.Maybe[any]
}

// XformMembers applies each pair's transform through the member it names, in
// pair order, threading the evolving clone. A key naming no member is a
// no-op for that pair, not an error.
func (n *Nfocal) XformMembers(subject any, pairs []XformPair, opts ...XformOption) (any, error) {
	cur := subject
	for _, p := range pairs {
		o := n.member(p.Key)
		if o == nil {
			continue
		}
		next, err := o.XformInClone(cur, p.Fn, opts...)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// XformMembersMaybe is XformMembers in optional-value form.
func (n *Nfocal) XformMembersMaybe(subject any, pairs []XformMaybePair) (any, error) {
	cur := subject
	for _, p := range pairs {
		o := n.member(p.Key)
		if o == nil {
			continue
		}
		next, err := o.XformInCloneMaybe(cur, p.Fn)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// XformInClone applies fn through every member in construction order.
func (n *Nfocal) XformInClone(subject any, fn func(any) any, opts ...XformOption) (any, error) {
	cur := subject
	var err error
	n.eachMemberErr(func(_ any, o Optic) error {
		cur, err = o.XformInClone(cur, fn, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cur, nil
}

// XformInCloneMaybe applies fn through every member in construction order.
func (n *Nfocal) XformInCloneMaybe(subject any, fn func(maybe.Maybe[any]) maybe.Maybe[any]) (any, error) {
	cur := subject
	var err error
	n.eachMemberErr(func(_ any, o Optic) error {
		cur, err = o.XformInCloneMaybe(cur, fn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cur, nil
}

// SetInClone distributes newAggregate over the members: member i (or member
// k) receives the aggregate's value at index i (key k), and a hole or a
// missing key means that member's slot is removed. A member that is itself a
// multifocal distributes its element recursively. After all members are
// applied it verifies the result: when members overlap on one underlying
// slot and disagree about its new state, the operation fails with a
// StereoscopyError instead of applying either silently. Overlapping members
// that agree write the shared slot exactly once.
func (n *Nfocal) SetInClone(subject, newAggregate any) (any, error) {
	type assignment struct {
		key   any
		optic Optic
		want  maybe.Maybe[any]
	}
	var assignments []assignment
	n.eachMember(func(key any, o Optic) {
		assignments = append(assignments, assignment{
			key:   key,
			optic: o,
			want:  containers.Probe(newAggregate, key),
		})
	})

	cur := subject
	for _, a := range assignments {
		var next any
		var err error
		if wv, ok := a.want.Get(); ok {
			next, err = a.optic.SetInClone(cur, wv)
		} else {
			next, err = a.optic.XformInCloneMaybe(cur, func(maybe.Maybe[any]) maybe.Maybe[any] {
				return maybe.Nothing[any]()
			})
		}
		if err != nil {
			return nil, err
		}
		cur = next
	}

	var conflicts []any
	for _, a := range assignments {
		wv, wok := a.want.Get()
		if !wok {
			// A removed member must no longer resolve. Present covers both
			// plain members (Nothing) and multifocal members (no inner member
			// resolves).
			if a.optic.Present(cur) {
				conflicts = append(conflicts, a.key)
			}
			continue
		}
		got := a.optic.GetMaybe(cur)
		gv, gok := got.Get()
		switch {
		case !gok:
			conflicts = append(conflicts, a.key)
		case got.IsAggregate():
			// An aggregate is rebuilt on every read, so it never has the
			// identity of the wanted value; compare structurally.
			if !containers.Equal(gv, wv) {
				conflicts = append(conflicts, a.key)
			}
		default:
			if !same(gv, wv) {
				conflicts = append(conflicts, a.key)
			}
		}
	}
	if len(conflicts) > 0 {
		return nil, StereoscopyError{Members: conflicts}
	}
	return cur, nil
}

// member returns the optic the key names, or nil.
func (n *Nfocal) member(key any) Optic {
	if n.rec != nil {
		k, ok := key.(string)
		if !ok {
			return nil
		}
		return n.rec[k]
	}
	i, ok := containers.NumericKey(key)
	if !ok || i < 0 || i >= len(n.seq) {
		return nil
	}
	return n.seq[i]
}

// eachMember visits members in construction order: index order for the
// sequence shape, sorted key order for the record shape.
func (n *Nfocal) eachMember(f func(key any, o Optic)) {
	if n.rec != nil {
		for _, k := range n.recKeys {
			f(k, n.rec[k])
		}
		return
	}
	for i, o := range n.seq {
		f(i, o)
	}
}

// eachMemberErr is eachMember stopping at the first error.
func (n *Nfocal) eachMemberErr(f func(key any, o Optic) error) {
	stopped := false
	n.eachMember(func(key any, o Optic) {
		if stopped {
			return
		}
		if f(key, o) != nil {
			stopped = true
		}
	})
}
