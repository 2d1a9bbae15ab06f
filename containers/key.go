package containers

import "strconv"

// NumericKey converts an integer-valued key (any integer width, or an
// integral float64) to int, reporting whether k is such a key.
func NumericKey(k any) (int, bool) {
	return intKey(k)
}

// IsNumericKey reports whether k is an integer-valued key, the kind that
// selects a sequence when a missing intermediate container must be
// synthesized.
func IsNumericKey(k any) bool {
	_, ok := intKey(k)
	return ok
}

// intKey converts an integer-valued key to int.
func intKey(k any) (int, bool) {
	switch k := k.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	case float64:
		if k == float64(int(k)) {
			return int(k), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// seqIndex converts k to a valid index into a sequence of length n. Negative
// indices count from the end, -1 being the last element.
func seqIndex(k any, n int) (int, bool) {
	i, ok := intKey(k)
	if !ok {
		return 0, false
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// recordKey converts k to a record key. Integer keys coerce to their decimal
// representation, so a numeric step can address an existing record.
func recordKey(k any) (string, bool) {
	if s, ok := k.(string); ok {
		return s, true
	}
	if i, ok := intKey(k); ok {
		return strconv.Itoa(i), true
	}
	return "", false
}
