package lens

import (
	"github.com/PNW-TechPros/natural-lenses/containers"
	"github.com/PNW-TechPros/natural-lenses/tt"
)

// Args is a shorthand for tt.Args.
var Args = tt.Args

type equalMatcher struct {
	want any
}

// eq returns a tt matcher that matches by structural container equality.
func eq(want any) tt.Matcher { return equalMatcher{want} }

func (m equalMatcher) Match(got tt.RetValue) bool {
	return containers.Equal(m.want, got)
}

// record and seq make test subjects terse.
func record(kv ...any) map[string]any {
	r := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		r[kv[i].(string)] = kv[i+1]
	}
	return r
}

func seq(vs ...any) []any { return vs }
