package containers

type holeMarker struct{}

func (holeMarker) Kind() string { return "hole" }

// Hole is the sparse-hole marker. Removing a non-final element of a sequence
// stores Hole in its place, preserving the positions of the elements after
// it; probing a hole yields Nothing while the sequence keeps its length.
var Hole any = holeMarker{}

// IsHole reports whether v is the sparse-hole marker.
func IsHole(v any) bool {
	_, ok := v.(holeMarker)
	return ok
}
