package adjacency

import "github.com/jacksonloper/gridsat/grid"

// cairoDiagonalByClass maps a cell's (row mod 2, col mod 2) parity class to
// the one diagonal offset Cairo pentagonal tiling adds to that cell's four
// cardinal neighbors. The four classes produce the four tile orientations
// that tile the plane.
//
// The assignment is chosen so adjacency is symmetric by construction: a
// diagonal step flips both row and col parity, and each class's chosen
// diagonal is the negation of the diagonal chosen by the class reached by
// stepping along it. Concretely:
//
//	class (0,0) -> NE; stepping NE lands in class (1,1) -> SW = -NE
//	class (0,1) -> NW; stepping NW lands in class (1,0) -> SE = -NW
//
// so u picks v as its diagonal neighbor exactly when v picks u back.
var cairoDiagonalByClass = [2][2]offset{
	{northEast, northWest}, // row%2==0: col%2==0 -> NE, col%2==1 -> NW
	{southEast, southWest}, // row%2==1: col%2==0 -> SE, col%2==1 -> SW
}

// cairoDiagonal returns the single Cairo-diagonal offset for p's parity
// class.
func cairoDiagonal(p grid.Point) offset {
	return cairoDiagonalByClass[mod2(p.Row)][mod2(p.Col)]
}

// mod2 returns n mod 2 as 0 or 1, correct for negative n (grid coordinates
// are never negative in practice, but this keeps the helper total).
func mod2(n int) int {
	m := n % 2
	if m < 0 {
		m += 2
	}

	return m
}

// cairoNeighbors returns the five neighbors of p under Cairo pentagonal
// tiling: the four cardinals plus the one diagonal selected by p's parity
// class, filtered to in-bounds candidates.
func cairoNeighbors(p grid.Point, width, height int) []grid.Point {
	offsets := make([]offset, 0, 5)
	offsets = append(offsets, cardinals...)
	offsets = append(offsets, cairoDiagonal(p))

	return applyOffsets(p, width, height, offsets)
}
