// Package maybe provides the two-state optional value encoding used
// throughout the lens packages: a value is either Nothing or Just a value.
// Presence is signalled by the tag alone, so Just may wrap any value,
// including nil; this keeps "key absent" distinct from "key present with an
// empty value" everywhere.
package maybe

type state uint8

const (
	nothing state = iota
	just
	aggregate
)

// Maybe is an optional value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	state state
}

// Just returns a Maybe holding v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, state: just}
}

// Nothing returns an absent Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// JustAggregate returns a Just carrying the aggregate mark. Multifocal optics
// produce aggregate results that exist even when individual members are
// absent; the mark lets callers tell such a Just from a plain one.
func JustAggregate[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, state: aggregate}
}

// IsJust returns whether m holds a value. Aggregate-marked values are Justs.
func (m Maybe[T]) IsJust() bool {
	return m.state != nothing
}

// IsNothing returns whether m is absent.
func (m Maybe[T]) IsNothing() bool {
	return m.state == nothing
}

// IsAggregate returns whether m carries the multifocal aggregate mark.
func (m Maybe[T]) IsAggregate() bool {
	return m.state == aggregate
}

// Get returns the wrapped value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.state != nothing
}

// Or returns the wrapped value, or def when m is absent.
func (m Maybe[T]) Or(def T) T {
	if m.state == nothing {
		return def
	}
	return m.value
}

// Must returns the wrapped value and panics when m is absent.
func (m Maybe[T]) Must() T {
	if m.state == nothing {
		panic("maybe: Must called on Nothing")
	}
	return m.value
}

// Map applies f to the wrapped value when present, preserving the tag.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.state == nothing {
		return m
	}
	return Maybe[T]{value: f(m.value), state: m.state}
}

// Map applies f to the value wrapped in m, if any.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains a computation that may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}
