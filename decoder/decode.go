package decoder

import (
	"sort"

	"github.com/jacksonloper/gridsat/encoder"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// Decode reads a satisfying assignment off adapter and reconstructs a
// grid.Solution: the kept/blocked edge lists, the completed color matrix,
// and one distance matrix per entry in constraints.
func Decode(g *grid.ColorGrid, result *encoder.Result, adapter satsolver.Adapter, constraints []grid.PathConstraint) (*grid.Solution, error) {
	kept, blocked := classifyEdges(adapter, result.EdgeVars)

	colors := make([][]uint32, g.Height)
	for r := 0; r < g.Height; r++ {
		colors[r] = make([]uint32, g.Width)
		for c := 0; c < g.Width; c++ {
			colors[r][c] = cellColor(g, result, adapter, grid.Point{Row: r, Col: c})
		}
	}

	var distances map[string][][]int
	if len(constraints) > 0 {
		keptAdj := buildKeptAdjacency(kept)
		distances = make(map[string][][]int, len(constraints))
		for _, pc := range constraints {
			distances[pc.Name] = bfsDistances(keptAdj, pc.Root, g.Width, g.Height)
		}
	}

	return &grid.Solution{
		Kept:      kept,
		Blocked:   blocked,
		Colors:    colors,
		Distances: distances,
	}, nil
}

// classifyEdges splits edgeVars into kept and blocked lists, each sorted by
// canonical (A, then B) point order for deterministic output.
func classifyEdges(adapter satsolver.Adapter, edgeVars map[grid.Edge]satsolver.Var) (kept, blocked []grid.Edge) {
	for e, v := range edgeVars {
		if adapter.Value(v) {
			kept = append(kept, e)
		} else {
			blocked = append(blocked, e)
		}
	}
	sortEdges(kept)
	sortEdges(blocked)

	return kept, blocked
}

func sortEdges(edges []grid.Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A.Less(edges[j].A)
		}

		return edges[i].B.Less(edges[j].B)
	})
}

// cellColor returns the color p holds in the assignment: the fixed color
// for a fixed cell (rewriting Unconstrained/Origin/Far markers down to
// their base color, since EffectiveColor already does that), or whichever
// active color's variable came back true for a blank cell. If the
// assignment left no active color true for a blank cell — impossible
// under a correct encoding, since exactly-one was asserted — it defaults
// to the first palette color rather than panicking.
func cellColor(g *grid.ColorGrid, result *encoder.Result, adapter satsolver.Adapter, p grid.Point) uint32 {
	cell := g.At(p)
	if cell.IsFixed() {
		return cell.EffectiveColor()
	}
	for _, c := range result.Palette {
		v, ok := result.ColorVar(p, c)
		if ok && adapter.Value(v) {
			return c
		}
	}

	if len(result.Palette) > 0 {
		return result.Palette[0]
	}

	return 0
}
