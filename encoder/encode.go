package encoder

import (
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
)

// Encode builds the complete CNF for one grid-coloring instance against b,
// in the deterministic order color variables, edge variables, per-color
// connectivity, reachability ladders, wall density — so that the same
// grid and options always produce byte-identical clauses.
//
// Encode itself never calls Solve. A returned Result with DesignUnsat set
// means Encode proved the instance infeasible before finishing (or before
// starting) the clause set; callers must check DesignUnsat before handing
// b's adapter to a solver.
func Encode(b *formula.Builder, g *grid.ColorGrid, opts Options) (*Result, error) {
	if !opts.Tiling.Valid() {
		return nil, grid.ErrUnknownTiling
	}
	if g.CountOrigins() > 1 {
		return &Result{DesignUnsat: true}, nil
	}

	palette := activePalette(g)
	colorVars := buildColorVars(b, g, palette)
	edgeVars, edgeOrder, err := buildEdgeVars(b, opts.Tiling, g.Width, g.Height)
	if err != nil {
		return nil, err
	}

	result := &Result{
		EdgeVars:  edgeVars,
		ColorVars: colorVars,
		Palette:   palette,
		Width:     g.Width,
		Height:    g.Height,
	}

	buildDisconnection(b, g, palette, colorVars, edgeVars, edgeOrder)

	if err := buildDegreeBounds(b, g, opts.Tiling, edgeVars); err != nil {
		return nil, err
	}

	unsat, err := buildConnectivity(b, g, opts.Tiling, palette, colorVars, edgeVars)
	if err != nil {
		return nil, err
	}
	if unsat {
		result.DesignUnsat = true
		result.Stats = Stats{
			NumVars:    b.Adapter().NumVars(),
			NumClauses: b.Adapter().NumClauses(),
		}

		return result, nil
	}

	if err := buildReachability(b, opts.Tiling, g.Width, g.Height, edgeVars, opts.PathConstraints); err != nil {
		return nil, err
	}
	buildWallDensity(b, opts.WallDensity, edgeVars, edgeOrder)

	result.Stats = Stats{
		NumVars:    b.Adapter().NumVars(),
		NumClauses: b.Adapter().NumClauses(),
	}

	return result, nil
}
