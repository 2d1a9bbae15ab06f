// Package lens implements an optics engine: composable accessors that read,
// test for presence, and immutably update a value nested arbitrarily deep
// inside a tree of heterogeneous containers (see the containers package).
//
// A mutating operation never modifies its subject. It returns a new root
// value in which only the containers along the optic's path are cloned;
// every untouched branch is shared with the original. Absence anywhere along
// a path is never an error: reads yield Nothing and writes fall back to
// documented no-ops or to synthesizing the missing intermediates.
package lens

import (
	"fmt"
	"strings"

	"github.com/PNW-TechPros/natural-lenses/containers"
	"github.com/PNW-TechPros/natural-lenses/logutil"
	"github.com/PNW-TechPros/natural-lenses/maybe"
)

var logger = logutil.GetLogger("[lens] ")

// Lens is an optic addressing a single path through nested containers. A
// step is a plain key (an integer index or any comparable key) or a
// *CustomStep. Lenses are immutable after construction and therefore safe
// for concurrent use.
type Lens struct {
	steps   []any
	factory ContainerFactory
}

var _ Optic = (*Lens)(nil)

// New returns a Lens over the given path steps, using the default
// construction rule for missing intermediate containers. Use a Factory to
// bind a different rule.
func New(steps ...any) *Lens {
	return &Lens{steps: append([]any(nil), steps...)}
}

// Steps returns a copy of l's path steps.
func (l *Lens) Steps() []any {
	return append([]any(nil), l.steps...)
}

// Present reports whether every step of l resolves in subject.
func (l *Lens) Present(subject any) bool {
	return l.GetMaybe(subject).IsJust()
}

// GetMaybe returns the optional value l resolves to in subject, folding each
// step's probe left to right and short-circuiting to Nothing on the first
// absence.
func (l *Lens) GetMaybe(subject any, tail ...any) maybe.Maybe[any] {
	cur := maybe.Just[any](subject)
	for _, st := range l.steps {
		c, ok := cur.Get()
		if !ok {
			return maybe.Nothing[any]()
		}
		cur = probeStep(st, c)
	}
	if len(tail) > 0 {
		return tailGetMaybe(cur, tail)
	}
	return cur
}

// Get returns the value l resolves to in subject, or nil when absent.
func (l *Lens) Get(subject any, tail ...any) any {
	m := l.GetMaybe(subject)
	if len(tail) > 0 {
		return tailGet(m, tail)
	}
	v, _ := m.Get()
	return v
}

// Equal reports whether other is a Lens with an equal step sequence. Two
// lenses with equal steps are semantically interchangeable.
func (l *Lens) Equal(other any) bool {
	o, ok := other.(*Lens)
	if !ok || len(o.steps) != len(l.steps) {
		return false
	}
	for i := range l.steps {
		if !containers.Equal(l.steps[i], o.steps[i]) {
			return false
		}
	}
	return true
}

// String returns the path in bracket form, e.g. Lens[answer][1].
func (l *Lens) String() string {
	var sb strings.Builder
	sb.WriteString("Lens")
	for _, st := range l.steps {
		if _, ok := st.(*CustomStep); ok {
			sb.WriteString("[<custom step>]")
		} else {
			fmt.Fprintf(&sb, "[%v]", st)
		}
	}
	return sb.String()
}

// path returns the steps in a printable form for error values.
func (l *Lens) path() []any {
	path := make([]any, len(l.steps))
	for i, st := range l.steps {
		if _, ok := st.(*CustomStep); ok {
			path[i] = "<custom step>"
		} else {
			path[i] = st
		}
	}
	return path
}
