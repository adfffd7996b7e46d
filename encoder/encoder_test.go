package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

func mustGrid(t *testing.T, rows [][]grid.Color) *grid.ColorGrid {
	t.Helper()
	g, err := grid.NewColorGrid(rows)
	require.NoError(t, err)

	return g
}

func reg(v uint32) grid.Color { return grid.Regular(v) }
func blk() grid.Color         { return grid.Blank() }

// TestEncode_TwoQuadrants is scenario A from the testable-properties table:
// a 2x2 grid split into two side-by-side column color bands must keep the
// vertical edges and block the horizontal ones.
func TestEncode_TwoQuadrants(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(1)},
		{reg(0), reg(1)},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	result, err := Encode(b, g, Options{Tiling: grid.Square})
	require.NoError(t, err)
	require.False(t, result.DesignUnsat)

	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)

	kept := func(u, v grid.Point) bool {
		return a.Value(result.EdgeVars[grid.NewEdge(u, v)])
	}

	assert.True(t, kept(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 1, Col: 0}))
	assert.True(t, kept(grid.Point{Row: 0, Col: 1}, grid.Point{Row: 1, Col: 1}))
	assert.False(t, kept(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 1}))
	assert.False(t, kept(grid.Point{Row: 1, Col: 0}, grid.Point{Row: 1, Col: 1}))
}

// TestEncode_DiagonalIsUnsat is scenario C: two same-colored cells only
// diagonally placed can never connect under square (4-neighbor) adjacency.
func TestEncode_DiagonalIsUnsat(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(1)},
		{reg(1), reg(0)},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	result, err := Encode(b, g, Options{Tiling: grid.Square})
	require.NoError(t, err)

	if result.DesignUnsat {
		return // proved infeasible before the solver ran
	}

	ok, err := a.Solve()
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEncode_AllBlankIsTriviallySatisfiable checks that Encode (not just the
// solve-level fast path) handles an all-blank grid without emitting an
// empty-palette unsat.
func TestEncode_AllBlankIsTriviallySatisfiable(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{blk(), blk()},
		{blk(), blk()},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	result, err := Encode(b, g, Options{Tiling: grid.Square})
	require.NoError(t, err)
	require.False(t, result.DesignUnsat)
	assert.Equal(t, []uint32{0}, result.Palette)

	ok, err := a.Solve()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestEncode_MultipleOriginsIsDesignUnsat checks the origin-at-most-one
// short circuit fires without ever touching the solver.
func TestEncode_MultipleOriginsIsDesignUnsat(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{grid.OriginMarker(0), reg(0)},
		{grid.OriginMarker(0), reg(0)},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	result, err := Encode(b, g, Options{Tiling: grid.Square})
	require.NoError(t, err)
	assert.True(t, result.DesignUnsat)
}

// TestEncode_WallDensityFloorForcesUnsat is scenario F: a 2x2 all-blank
// grid with a 0.75 wall-density floor leaves every cell without enough
// kept incident edges.
func TestEncode_WallDensityFloorForcesUnsat(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{blk(), blk()},
		{blk(), blk()},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	result, err := Encode(b, g, Options{Tiling: grid.Square, WallDensity: 0.75})
	require.NoError(t, err)
	require.False(t, result.DesignUnsat)

	ok, err := a.Solve()
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEncode_UnconstrainedCellNeedsNoConnectivity checks that an isolated
// Unconstrained cell of a color no other fixed cell shares does not force
// a design unsat purely for lack of same-color neighbors.
func TestEncode_UnconstrainedCellNeedsNoConnectivity(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{grid.Unconstrained(7), reg(0)},
		{reg(0), reg(0)},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	result, err := Encode(b, g, Options{Tiling: grid.Square})
	require.NoError(t, err)
	require.False(t, result.DesignUnsat)

	ok, err := a.Solve()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestEncode_PathConstraintEnforcesMinimumDistance is scenario E: a 1x5 row
// of a single fixed color with a pathlength constraint requiring cell
// (0,4) to be at least distance 4 from (0,0) — satisfiable with every edge
// kept, which the single color's connectivity along the row forces anyway.
func TestEncode_PathConstraintEnforcesMinimumDistance(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(0), reg(0), reg(0), reg(0)},
	})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	pc := grid.PathConstraint{
		Name:    "root",
		Root:    grid.Point{Row: 0, Col: 0},
		MinDist: map[grid.Point]int{{Row: 0, Col: 4}: 4},
	}

	result, err := Encode(b, g, Options{Tiling: grid.Square, PathConstraints: []grid.PathConstraint{pc}})
	require.NoError(t, err)
	require.False(t, result.DesignUnsat)

	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)

	for c := 0; c < 4; c++ {
		e := grid.NewEdge(grid.Point{Row: 0, Col: c}, grid.Point{Row: 0, Col: c + 1})
		assert.True(t, a.Value(result.EdgeVars[e]), "edge %v must be kept to reach the required distance", e)
	}
}

func TestEncode_UnknownTilingIsError(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{{blk()}})

	a := satsolver.NewBatch()
	defer a.Release()
	b := formula.NewBuilder(a)

	_, err := Encode(b, g, Options{Tiling: grid.Tiling(99)})
	assert.ErrorIs(t, err, grid.ErrUnknownTiling)
}
