package lens

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/PNW-TechPros/natural-lenses/containers"
)

// XformIterableInClone transforms the sequence value at l as a whole: fn
// receives the current elements collected into a slice (nil when the slot is
// absent or not iterable) and returns the replacement sequence. A transform
// that returns a non-iterable value is the engine's one soft anomaly: the
// event is logged and an empty sequence is substituted, so the operation
// still returns a well-formed clone and never raises.
func (l *Lens) XformIterableInClone(subject any, fn func(elems []any) any, opts ...XformOption) (any, error) {
	return l.XformInClone(subject, func(v any) any {
		elems, err := containers.Collect(v)
		if err != nil {
			elems = nil
		}
		res := fn(elems)
		if !containers.Iterable(res) {
			logger.Printf("transform at %s returned non-iterable %s; substituting an empty sequence",
				l, spew.Sprintf("%#v", res))
			return []any{}
		}
		return res
	}, opts...)
}
