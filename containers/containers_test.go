package containers

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name      string
		container any
		key       any
		want      any
		present   bool
	}{
		{"record hit", map[string]any{"k": "v"}, "k", "v", true},
		{"record miss", map[string]any{"k": "v"}, "other", nil, false},
		{"record nil value is present", map[string]any{"k": nil}, "k", nil, true},
		{"record numeric key coerces", map[string]any{"1": "v"}, 1, "v", true},
		{"seq hit", []any{2, 3, 5}, 1, 3, true},
		{"seq negative index", []any{2, 3, 5}, -1, 5, true},
		{"seq negative from end", []any{2, 3, 5}, -3, 2, true},
		{"seq out of range", []any{2, 3, 5}, 3, nil, false},
		{"seq negative out of range", []any{2, 3, 5}, -4, nil, false},
		{"seq hole", []any{2, Hole, 5}, 1, nil, false},
		{"seq string key", []any{2, 3, 5}, "k", nil, false},
		{"seq float64 integral key", []any{2, 3, 5}, float64(2), 5, true},
		{"native store", map[any]any{1: "one"}, 1, "one", true},
		{"native store uncomparable key", map[any]any{1: "one"}, []any{}, nil, false},
		{"store", MakeStore("k", "v"), "k", "v", true},
		{"store miss", MakeStore("k", "v"), "other", nil, false},
		{"list", MakeList("a", "b"), -1, "b", true},
		{"list out of range", MakeList("a", "b"), 2, nil, false},
		{"nil container", nil, "k", nil, false},
		{"scalar container", 42, "k", nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := Probe(test.container, test.key).Get()
			assert.Equal(t, test.present, ok)
			if test.present {
				assert.True(t, Equal(test.want, got), "Probe => %v, want %v", got, test.want)
			}
		})
	}
}

func TestAssocRecord(t *testing.T) {
	orig := map[string]any{"a": 1}
	got, err := Assoc(orig, "b", 2)
	require.NoError(t, err)
	assert.True(t, Equal(got, map[string]any{"a": 1, "b": 2}))
	assert.Equal(t, map[string]any{"a": 1}, orig, "original modified")
}

func TestAssocSeq(t *testing.T) {
	orig := []any{2, 3, 5}
	tests := []struct {
		name string
		key  any
		want []any
	}{
		{"replace", 1, []any{2, 7, 5}},
		{"replace negative", -3, []any{7, 3, 5}},
		{"append", 3, []any{2, 3, 5, 7}},
		{"extend with holes", 5, []any{2, 3, 5, Hole, Hole, 7}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Assoc(orig, test.key, 7)
			require.NoError(t, err)
			assert.True(t, Equal(got, test.want), "Assoc => %v, want %v", got, test.want)
			assert.Equal(t, []any{2, 3, 5}, orig, "original modified")
		})
	}

	_, err := Assoc(orig, -4, 7)
	var ke KeyError
	require.ErrorAs(t, err, &ke)
}

func TestAssocStoreAndList(t *testing.T) {
	store := MakeStore("k", 1)
	got, err := Assoc(store, "k2", 2)
	require.NoError(t, err)
	assert.True(t, Equal(got, MakeStore("k", 1, "k2", 2)))
	assert.True(t, Equal(store, MakeStore("k", 1)), "original modified")

	list := MakeList("a", "b")
	got, err = Assoc(list, 1, "B")
	require.NoError(t, err)
	assert.True(t, Equal(got, MakeList("a", "B")))

	got, err = Assoc(list, 2, "c")
	require.NoError(t, err)
	assert.True(t, Equal(got, MakeList("a", "b", "c")))

	got, err = Assoc(list, 4, "e")
	require.NoError(t, err)
	assert.Equal(t, 5, Len(got))
	assert.False(t, Probe(got, 3).IsJust(), "gap did not fill with holes")
	v, _ := Probe(got, 4).Get()
	assert.Equal(t, "e", v)
}

func TestAssocUnsupported(t *testing.T) {
	_, err := Assoc(42, "k", "v")
	var ce CloneError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "assoc")
}

func TestDissocRecord(t *testing.T) {
	orig := map[string]any{"a": 1, "b": 2}
	got, err := Dissoc(orig, "a")
	require.NoError(t, err)
	assert.True(t, Equal(got, map[string]any{"b": 2}))
	assert.Len(t, orig, 2, "original modified")

	// Removing an absent key returns the container unchanged.
	got, err = Dissoc(orig, "zz")
	require.NoError(t, err)
	assert.True(t, reflect.ValueOf(got).Pointer() == reflect.ValueOf(orig).Pointer())
}

func TestDissocSeq(t *testing.T) {
	orig := []any{2, 3, 5}

	got, err := Dissoc(orig, -1)
	require.NoError(t, err)
	assert.True(t, Equal(got, []any{2, 3}), "removing the last element must shrink")

	got, err = Dissoc(orig, 1)
	require.NoError(t, err)
	seq := got.([]any)
	assert.Len(t, seq, 3, "removing a middle element must keep the length")
	assert.True(t, IsHole(seq[1]))
	assert.False(t, Probe(seq, 1).IsJust())

	got, err = Dissoc(orig, 9)
	require.NoError(t, err)
	assert.True(t, Equal(got, orig), "out-of-range removal must be a no-op")
}

func TestDissocStoreAndList(t *testing.T) {
	store := MakeStore("a", 1, "b", 2)
	got, err := Dissoc(store, "a")
	require.NoError(t, err)
	assert.True(t, Equal(got, MakeStore("b", 2)))

	list := MakeList("a", "b", "c")
	got, err = Dissoc(list, -1)
	require.NoError(t, err)
	assert.True(t, Equal(got, MakeList("a", "b")))

	got, err = Dissoc(list, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, Len(got))
	assert.False(t, Probe(got, 0).IsJust())
}

func TestCloneWith(t *testing.T) {
	got, err := CloneWith([]any{1, 2}, Set{Key: 0, Value: 9})
	require.NoError(t, err)
	assert.True(t, Equal(got, []any{9, 2}))

	got, err = CloneWith(map[string]any{"a": 1}, Remove{Key: "a"})
	require.NoError(t, err)
	assert.True(t, Equal(got, map[string]any{}))

	got, err = CloneWith([]any{1, 2, 3}, Pop{})
	require.NoError(t, err)
	assert.True(t, Equal(got, []any{1, 2}))

	got, err = CloneWith([]any{}, Pop{})
	require.NoError(t, err)
	assert.True(t, Equal(got, []any{}), "popping an empty sequence must be a no-op")
}

type ratchet struct {
	clicks int
}

func TestRegistry(t *testing.T) {
	typ := reflect.TypeOf(&ratchet{})
	ok := Register(typ, Capability{
		Probe: func(c, k any) (any, bool) {
			if k == "clicks" {
				return c.(*ratchet).clicks, true
			}
			return nil, false
		},
		Assoc: func(c, k, v any) any {
			return &ratchet{clicks: v.(int)}
		},
		Dissoc: func(c, k any) any {
			return &ratchet{}
		},
		Empty: func() any { return &ratchet{} },
	})
	require.True(t, ok, "first registration must succeed")

	// Registration is idempotent: the existing capability is kept.
	assert.False(t, Register(typ, Capability{}))
	cb, found := Registered(typ)
	require.True(t, found)
	assert.NotNil(t, cb.Probe)

	r := &ratchet{clicks: 3}
	v, present := Probe(r, "clicks").Get()
	require.True(t, present)
	assert.Equal(t, 3, v)
	assert.False(t, Probe(r, "other").IsJust())

	got, err := Assoc(r, "clicks", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.(*ratchet).clicks)
	assert.Equal(t, 3, r.clicks, "original modified")

	got, err = Dissoc(r, "clicks")
	require.NoError(t, err)
	assert.Equal(t, 0, got.(*ratchet).clicks)
}

type probeOnly struct{ v any }

func (p probeOnly) Probe(k any) (any, bool) {
	if k == "it" {
		return p.v, true
	}
	return nil, false
}

func TestCapabilityInterfaces(t *testing.T) {
	p := probeOnly{v: "payload"}
	v, ok := Probe(p, "it").Get()
	require.True(t, ok)
	assert.Equal(t, "payload", v)

	// A Prober without Assoc still has no cloning path.
	_, err := Assoc(p, "it", 1)
	var ce CloneError
	require.ErrorAs(t, err, &ce)
}

func TestMakeStorePanicsOnOddArgs(t *testing.T) {
	assert.Panics(t, func() { MakeStore("just a key") })
}
