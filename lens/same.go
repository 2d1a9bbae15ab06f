package lens

import "reflect"

// same reports reference identity: comparable values compare with ==,
// reference kinds (maps, slices, pointers, channels, functions) compare by
// pointer. It is deliberately not structural equality — the identity
// short-circuit of the clone algorithm must never fire for a value that
// merely looks like the current one.
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Ptr, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		// Distinct zero-length slices can share the runtime's zero-size base
		// pointer, so an empty slice has no usable identity.
		return va.Len() > 0 && va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	default:
		if va.Type().Comparable() {
			return a == b
		}
		return false
	}
}
