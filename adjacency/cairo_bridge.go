package adjacency

import "github.com/jacksonloper/gridsat/grid"

// cairoBridgeNeighbors returns the seven neighbors of p under Cairo-with-
// bridges tiling: the four cardinals plus three of the four diagonals. The
// excluded diagonal is the one diametrically opposite p's Cairo-diagonal
// (see cairoDiagonal), preserving planarity while adding diagonal bridges.
//
// Because opposite(cairoDiagonal(p)) is excluded symmetrically on both
// sides of every such pair (see cairo.go's symmetry argument — the
// excluded direction and its reverse are always excluded together), this
// table is adjacency-symmetric the same way cairoNeighbors is.
func cairoBridgeNeighbors(p grid.Point, width, height int) []grid.Point {
	excluded := opposite(cairoDiagonal(p))

	offsets := make([]offset, 0, 7)
	offsets = append(offsets, cardinals...)
	for _, d := range diagonals {
		if d == excluded {
			continue
		}
		offsets = append(offsets, d)
	}

	return applyOffsets(p, width, height, offsets)
}
