package maybe

import "testing"

func TestTagSignalsPresence(t *testing.T) {
	if !Just[any](nil).IsJust() {
		t.Errorf("Just(nil).IsJust() => false, want true")
	}
	if Nothing[any]().IsJust() {
		t.Errorf("Nothing().IsJust() => true, want false")
	}
	if v, ok := Just(7).Get(); !ok || v != 7 {
		t.Errorf("Just(7).Get() => (%v, %v), want (7, true)", v, ok)
	}
	if _, ok := Nothing[int]().Get(); ok {
		t.Errorf("Nothing().Get() reports present")
	}
}

func TestZeroValueIsNothing(t *testing.T) {
	var m Maybe[string]
	if !m.IsNothing() {
		t.Errorf("zero Maybe is not Nothing")
	}
}

func TestAggregateMark(t *testing.T) {
	m := JustAggregate[any]([]any{1, 2})
	if !m.IsJust() || !m.IsAggregate() {
		t.Errorf("JustAggregate is not an aggregate Just")
	}
	if Just(1).IsAggregate() {
		t.Errorf("plain Just carries the aggregate mark")
	}
	if got := m.Map(func(v any) any { return v }); !got.IsAggregate() {
		t.Errorf("Map dropped the aggregate mark")
	}
}

func TestOrAndMust(t *testing.T) {
	if got := Nothing[int]().Or(42); got != 42 {
		t.Errorf("Nothing.Or(42) => %v, want 42", got)
	}
	if got := Just(1).Or(42); got != 1 {
		t.Errorf("Just(1).Or(42) => %v, want 1", got)
	}
	if got := Just("x").Must(); got != "x" {
		t.Errorf(`Just("x").Must() => %q, want "x"`, got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Must on Nothing did not panic")
		}
	}()
	Nothing[int]().Must()
}

func TestCombinators(t *testing.T) {
	double := func(x int) int { return 2 * x }
	if v, _ := Just(3).Map(double).Get(); v != 6 {
		t.Errorf("Just(3).Map(double) => %v, want 6", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Errorf("Nothing.Map is not Nothing")
	}
	itoa := func(x int) string {
		return string(rune('0' + x))
	}
	if v, _ := Map(itoa, Just(5)).Get(); v != "5" {
		t.Errorf(`Map(itoa, Just(5)) => %q, want "5"`, v)
	}
	half := func(x int) Maybe[int] {
		if x%2 != 0 {
			return Nothing[int]()
		}
		return Just(x / 2)
	}
	if v, _ := AndThen(half, Just(8)).Get(); v != 4 {
		t.Errorf("AndThen(half, Just(8)) => %v, want 4", v)
	}
	if !AndThen(half, Just(3)).IsNothing() {
		t.Errorf("AndThen(half, Just(3)) is not Nothing")
	}
}
