package adjacency

import "github.com/jacksonloper/gridsat/grid"

// Hex neighbor offsets under odd-row-shifted-right ("odd-r") offset
// coordinates. Row parity changes which six offsets are correct, because
// shifting odd rows right by half a hex width changes which diagonal
// neighbors line up with which column.
var (
	hexOffsetsEvenRow = []offset{
		{-1, -1}, {-1, 0}, // NW, NE (even row: both above-neighbors sit one column left/at col)
		{0, -1}, {0, 1}, // W, E
		{1, -1}, {1, 0}, // SW, SE
	}
	hexOffsetsOddRow = []offset{
		{-1, 0}, {-1, 1}, // NW, NE (odd row: both above-neighbors sit at col/one column right)
		{0, -1}, {0, 1}, // W, E
		{1, 0}, {1, 1}, // SW, SE
	}
)

// hexNeighbors returns the six offset-coordinate neighbors of p, selecting
// the even- or odd-row table by p.Row's parity, filtered to in-bounds
// candidates.
func hexNeighbors(p grid.Point, width, height int) []grid.Point {
	table := hexOffsetsEvenRow
	if p.Row%2 != 0 {
		table = hexOffsetsOddRow
	}

	return applyOffsets(p, width, height, table)
}
