package adjacency

import "github.com/jacksonloper/gridsat/grid"

// Neighbors returns the in-bounds neighbors of p on a width x height board
// under the given tiling, in the tiling's canonical offset order. It is a
// pure function: the result depends only on p, width, height, and tiling.
//
// Returns ErrUnknownTiling if tiling is outside the five supported tags.
func Neighbors(tiling grid.Tiling, p grid.Point, width, height int) ([]grid.Point, error) {
	switch tiling {
	case grid.Square:
		return squareNeighbors(p, width, height), nil
	case grid.Hex:
		return hexNeighbors(p, width, height), nil
	case grid.Octagon:
		return octagonNeighbors(p, width, height), nil
	case grid.Cairo:
		return cairoNeighbors(p, width, height), nil
	case grid.CairoBridge:
		return cairoBridgeNeighbors(p, width, height), nil
	default:
		return nil, ErrUnknownTiling
	}
}

// MaxDegree returns the maximum number of neighbors any cell can have under
// tiling. The encoder does not call it: it picks its at-most-3-kept
// encoding from each cell's actual incident-edge count.
func MaxDegree(tiling grid.Tiling) int {
	switch tiling {
	case grid.Square:
		return 4
	case grid.Hex:
		return 6
	case grid.Octagon:
		return 8
	case grid.Cairo:
		return 5
	case grid.CairoBridge:
		return 7
	default:
		return 0
	}
}

// AllEdges enumerates every undirected neighboring pair on a width x height
// board under tiling, each reported exactly once via grid.NewEdge's
// canonical ordering. Row-major iteration over cells, and within each cell
// the tiling's offset order, makes the result deterministic: the same
// (tiling, width, height) always yields edges in the same order.
func AllEdges(tiling grid.Tiling, width, height int) ([]grid.Edge, error) {
	seen := make(map[string]struct{})
	var out []grid.Edge
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := grid.Point{Row: r, Col: c}
			nbrs, err := Neighbors(tiling, p, width, height)
			if err != nil {
				return nil, err
			}
			for _, n := range nbrs {
				e := grid.NewEdge(p, n)
				if _, ok := seen[e.Key()]; ok {
					continue
				}
				seen[e.Key()] = struct{}{}
				out = append(out, e)
			}
		}
	}

	return out, nil
}
