package encoder

import (
	"github.com/jacksonloper/gridsat/adjacency"
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// buildEdgeVars allocates one edge[u,v] variable per unordered neighboring
// pair under tiling, in the order adjacency.AllEdges produces them. True
// means kept (passage); false means blocked (wall). It returns both the
// lookup map and that same order as a slice: downstream clause-emitting
// code must range over the slice, never the map, since map iteration order
// is randomized per run and spec.md §5 requires encoder-deterministic
// variable and clause order.
func buildEdgeVars(b *formula.Builder, tiling grid.Tiling, width, height int) (map[grid.Edge]satsolver.Var, []grid.Edge, error) {
	edges, err := adjacency.AllEdges(tiling, width, height)
	if err != nil {
		return nil, nil, err
	}
	vars := make(map[grid.Edge]satsolver.Var, len(edges))
	for _, e := range edges {
		vars[e] = b.NewVar()
	}

	return vars, edges, nil
}
