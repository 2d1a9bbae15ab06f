package lens

import (
	"errors"

	"github.com/PNW-TechPros/natural-lenses/containers"
	"github.com/PNW-TechPros/natural-lenses/maybe"
)

// A CustomStep replaces the default keyed and indexed semantics for one path
// position. Each operation may be left nil to withhold the corresponding
// capability:
//
//   - a nil Probe disables reading and transforming through and past the
//     step (it always resolves to Nothing);
//   - a nil Rebuild disables mutation at or below the step (mutating
//     operations return the subject unchanged);
//   - a nil Construct disables synthesizing the step's container when it is
//     absent (mutation still works when the container already exists).
type CustomStep struct {
	// Probe returns the optional value the step resolves to in container.
	Probe func(container any) maybe.Maybe[any]
	// Rebuild returns a clone of container with the step's slot holding v,
	// or with the slot removed when v is Nothing.
	Rebuild func(container any, v maybe.Maybe[any]) any
	// Construct returns an empty container for the step to operate on when
	// the path must synthesize one.
	Construct func() any
}

// errMutationDisabled makes a mutating operation resolve to "return the
// subject unchanged"; capability withheld by a CustomStep is deliberate, not
// an error.
var errMutationDisabled = errors.New("mutation disabled by custom step")

func probeStep(st, c any) maybe.Maybe[any] {
	if cs, ok := st.(*CustomStep); ok {
		if cs.Probe == nil {
			return maybe.Nothing[any]()
		}
		return cs.Probe(c)
	}
	return containers.Probe(c, st)
}

// applyStep clones container c with the slot addressed by st set to v, or
// removed when v is Nothing.
func applyStep(st, c any, v maybe.Maybe[any]) (any, error) {
	if cs, ok := st.(*CustomStep); ok {
		if cs.Rebuild == nil {
			return nil, errMutationDisabled
		}
		return cs.Rebuild(c, v), nil
	}
	if val, ok := v.Get(); ok {
		return containers.Assoc(c, st, val)
	}
	return containers.Dissoc(c, st)
}
