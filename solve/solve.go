package solve

import (
	"github.com/jacksonloper/gridsat/adjacency"
	"github.com/jacksonloper/gridsat/decoder"
	"github.com/jacksonloper/gridsat/encoder"
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// Solve decides whether g's colors admit a wall placement honoring every
// invariant from SPEC_FULL.md section 5 under tiling, then returns a
// reconstructed grid.Solution. It owns one satsolver.Adapter end-to-end,
// allocated here and released before returning.
func Solve(g *grid.ColorGrid, tiling grid.Tiling, opts ...Option) (Outcome, error) {
	if !tiling.Valid() {
		return Outcome{Err: grid.ErrUnknownTiling}, grid.ErrUnknownTiling
	}
	options := gatherOptions(opts...)

	if g.AllBlank() && options.WallDensity <= 0 {
		return blankOutcome(g, tiling)
	}

	constraints, err := BuildConstraints(g, options)
	if err != nil {
		return Outcome{Err: err}, err
	}

	adapter := newAdapter(options.Backend)
	defer adapter.Release()
	b := formula.NewBuilder(adapter)

	result, err := encoder.Encode(b, g, encoder.Options{
		Tiling:          tiling,
		WallDensity:     options.WallDensity,
		PathConstraints: constraints,
	})
	if err != nil {
		return Outcome{Err: err}, err
	}
	if result.DesignUnsat {
		return Outcome{Unsat: true}, nil
	}

	ok, err := adapter.Solve()
	if err != nil {
		return Outcome{Err: err}, err
	}
	if !ok {
		return Outcome{Unsat: true}, nil
	}

	sol, err := decoder.Decode(g, result, adapter, constraints)
	if err != nil {
		return Outcome{Err: err}, err
	}

	return Outcome{Solution: sol}, nil
}

// blankOutcome handles the all-blank fast path, taken only when no
// wall-density floor is configured: every edge is kept and
// every cell takes the single synthetic color, without invoking a SAT
// backend at all.
func blankOutcome(g *grid.ColorGrid, tiling grid.Tiling) (Outcome, error) {
	edges, err := adjacency.AllEdges(tiling, g.Width, g.Height)
	if err != nil {
		return Outcome{Err: err}, err
	}
	colors := make([][]uint32, g.Height)
	for r := range colors {
		colors[r] = make([]uint32, g.Width)
	}

	return Outcome{Solution: &grid.Solution{Kept: edges, Colors: colors}}, nil
}

// BuildConstraints merges the caller-supplied path constraints with the
// one the origin/far markers imply, if any. A far marker with no origin
// configured for a distance horizon is left unconstrained by the markers;
// a distance horizon configured with no origin present is a caller error.
// Exported so callers that need to inspect or render the encoder's input
// (cmd/gridsatctl's DIMACS dump) can build the same constraint set Solve
// would use without duplicating this logic.
func BuildConstraints(g *grid.ColorGrid, options Options) ([]grid.PathConstraint, error) {
	constraints := make([]grid.PathConstraint, len(options.PathConstraints))
	copy(constraints, options.PathConstraints)

	origin, hasOrigin := g.FindOrigin()
	far := g.FarCells()

	if options.DistanceHorizon > 0 && !hasOrigin {
		return nil, ErrDistanceHorizonWithoutOrigin
	}
	if !hasOrigin || len(far) == 0 || options.DistanceHorizon <= 0 {
		return constraints, nil
	}

	minDist := make(map[grid.Point]int, len(far))
	for _, p := range far {
		minDist[p] = options.DistanceHorizon + 1
	}
	constraints = append(constraints, grid.PathConstraint{
		Name:    grid.OriginDistanceName,
		Root:    origin,
		MinDist: minDist,
	})

	return constraints, nil
}

func newAdapter(backend Backend) satsolver.Adapter {
	if backend == BackendIncremental {
		return satsolver.NewIncremental()
	}

	return satsolver.NewBatch()
}
