package adjacency

import "github.com/jacksonloper/gridsat/grid"

// octagonOffsets is the full eight-cell Moore neighborhood: the four
// cardinals plus all four diagonals. Diagonals are true neighbors in a
// truncated-square (octagon-with-square-gaps) tiling, since they cross
// through the small square gap between octagons.
var octagonOffsets = append(append([]offset{}, cardinals...), diagonals...)

// octagonNeighbors returns the up-to-eight Moore neighbors of p, filtered
// to in-bounds candidates.
func octagonNeighbors(p grid.Point, width, height int) []grid.Point {
	return applyOffsets(p, width, height, octagonOffsets)
}
