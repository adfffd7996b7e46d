package adjacency

import "github.com/jacksonloper/gridsat/grid"

// squareNeighbors returns the four orthogonal neighbors of p, filtered to
// those in-bounds for a width x height grid.
func squareNeighbors(p grid.Point, width, height int) []grid.Point {
	return applyOffsets(p, width, height, cardinals)
}

// applyOffsets is shared by every tiling: add each offset to p, keep only
// in-bounds results, preserving offset order for determinism.
func applyOffsets(p grid.Point, width, height int, offsets []offset) []grid.Point {
	out := make([]grid.Point, 0, len(offsets))
	for _, d := range offsets {
		cand := grid.Point{Row: p.Row + d.dRow, Col: p.Col + d.dCol}
		if cand.InBounds(width, height) {
			out = append(out, cand)
		}
	}

	return out
}
