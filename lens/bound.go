package lens

import "reflect"

// BoundFunc is a function value returned by Bound, pre-bound to the owner it
// was resolved on.
type BoundFunc func(args ...any) []any

// BoundOption customizes Bound's behavior when the owner or the method is
// absent.
type BoundOption func(*boundOpts)

type boundOpts struct {
	fallback BoundFunc
	err      error
}

// BindOr makes Bound fall back to the given function when the method cannot
// be resolved.
func BindOr(fallback BoundFunc) BoundOption {
	return func(o *boundOpts) { o.fallback = fallback }
}

// BindOrErr makes Bound return the given error when the method cannot be
// resolved.
func BindOrErr(err error) BoundOption {
	return func(o *boundOpts) { o.err = err }
}

// Bound treats the lens's final step as the name of a callable on the owner
// the preceding steps resolve to, and returns it pre-bound to that owner.
// A function value stored under the final step is returned directly; failing
// that, a method of that name is looked up on the owner. When neither
// resolves, Bound returns the BindOr fallback, or the BindOrErr error, or a
// no-op function.
func (l *Lens) Bound(subject any, opts ...BoundOption) (BoundFunc, error) {
	var o boundOpts
	for _, opt := range opts {
		opt(&o)
	}

	if fn, ok := l.resolveCallable(subject); ok {
		return fn, nil
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.fallback != nil {
		return o.fallback, nil
	}
	return func(...any) []any { return nil }, nil
}

func (l *Lens) resolveCallable(subject any) (BoundFunc, bool) {
	if len(l.steps) == 0 {
		return nil, false
	}
	owner, ok := New(l.steps[:len(l.steps)-1]...).GetMaybe(subject).Get()
	if !ok || owner == nil {
		return nil, false
	}
	last := l.steps[len(l.steps)-1]

	if v, ok := probeStep(last, owner).Get(); ok {
		fv := reflect.ValueOf(v)
		if fv.IsValid() && fv.Kind() == reflect.Func {
			return wrapCallable(fv), true
		}
	}
	if name, ok := last.(string); ok {
		if m := reflect.ValueOf(owner).MethodByName(name); m.IsValid() {
			return wrapCallable(m), true
		}
	}
	return nil, false
}

func wrapCallable(fv reflect.Value) BoundFunc {
	return func(args ...any) []any {
		t := fv.Type()
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(callableArgType(t, i))
			} else {
				in[i] = reflect.ValueOf(arg)
			}
		}
		out := fv.Call(in)
		rets := make([]any, len(out))
		for i, ret := range out {
			rets[i] = ret.Interface()
		}
		return rets
	}
}

func callableArgType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
