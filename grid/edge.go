package grid

import "fmt"

// Edge is an unordered pair of neighboring grid Points. A and B are always
// stored in canonical (lexicographically increasing) order so that {u,v}
// and {v,u} collapse to the same value and the same map Key.
type Edge struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// NewEdge canonicalizes u and v into an Edge with A the lexicographically
// smaller endpoint. u and v must be distinct; callers in this module never
// construct a self-edge (adjacency tables never report a cell as its own
// neighbor).
func NewEdge(u, v Point) Edge {
	if v.Less(u) {
		return Edge{A: v, B: u}
	}

	return Edge{A: u, B: v}
}

// Key renders a canonical string suitable for use as a map key, stable
// regardless of which endpoint was passed first to NewEdge.
func (e Edge) Key() string {
	return fmt.Sprintf("%s|%s", e.A, e.B)
}

// String renders e for diagnostics.
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.A, e.B)
}
