package lens

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/PNW-TechPros/natural-lenses/containers"
	"github.com/PNW-TechPros/natural-lenses/logutil"
)

func TestXformIterableInClone(t *testing.T) {
	subject := record("tags", seq("c", "a", "b"))
	got, err := New("tags").XformIterableInClone(subject, func(elems []any) any {
		ss := make([]string, len(elems))
		for i, e := range elems {
			ss[i] = e.(string)
		}
		sort.Strings(ss)
		out := make([]any, len(ss))
		for i, s := range ss {
			out[i] = s
		}
		return out
	})
	if err != nil {
		t.Fatalf("XformIterableInClone error: %v", err)
	}
	if !containers.Equal(got, record("tags", seq("a", "b", "c"))) {
		t.Errorf("XformIterableInClone => %v", got)
	}
}

func TestXformIterableInCloneList(t *testing.T) {
	subject := record("tags", containers.MakeList(1, 2))
	got, err := New("tags").XformIterableInClone(subject, func(elems []any) any {
		return append(elems, 3)
	})
	if err != nil {
		t.Fatalf("XformIterableInClone error: %v", err)
	}
	tags, _ := containers.Probe(got, "tags").Get()
	if !containers.Equal(tags, seq(1, 2, 3)) {
		t.Errorf("XformIterableInClone over a list => %v", tags)
	}
}

func TestXformIterableInCloneNonIterableResult(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetOutput(&buf)
	defer logutil.SetOutput(io.Discard)

	subject := record("tags", seq("a"))
	got, err := New("tags").XformIterableInClone(subject, func([]any) any {
		return 42
	})
	if err != nil {
		t.Fatalf("XformIterableInClone error: %v", err)
	}
	// The anomaly is logged and an empty sequence is substituted.
	tags := got.(map[string]any)["tags"].([]any)
	if len(tags) != 0 {
		t.Errorf("non-iterable result substituted %v, want an empty sequence", tags)
	}
	if !strings.Contains(buf.String(), "non-iterable") {
		t.Errorf("no warning logged for a non-iterable transform result; log: %q", buf.String())
	}
}

func TestXformIterableInCloneAddMissing(t *testing.T) {
	got, err := New("tags").XformIterableInClone(record(), func(elems []any) any {
		if elems != nil {
			t.Errorf("absent slot collected as %v, want nil", elems)
		}
		return seq("first")
	}, AddMissing())
	if err != nil {
		t.Fatalf("XformIterableInClone error: %v", err)
	}
	if !containers.Equal(got, record("tags", seq("first"))) {
		t.Errorf("XformIterableInClone with AddMissing => %v", got)
	}
}
