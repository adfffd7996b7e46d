package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonloper/gridsat/decoder"
	"github.com/jacksonloper/gridsat/grid"
)

func mustGrid(t *testing.T, rows [][]grid.Color) *grid.ColorGrid {
	t.Helper()
	g, err := grid.NewColorGrid(rows)
	require.NoError(t, err)

	return g
}

func reg(c uint32) grid.Color { return grid.Regular(c) }
func blk() grid.Color         { return grid.Blank() }

// TestSolve_TwoQuadrants is scenario A.
func TestSolve_TwoQuadrants(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(1)},
		{reg(0), reg(1)},
	})

	out, err := Solve(g, grid.Square)
	require.NoError(t, err)
	require.True(t, out.IsSat())

	wantKept := []grid.Edge{grid.NewEdge(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 1, Col: 0})}
	wantBlocked := []grid.Edge{grid.NewEdge(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 1})}
	assert.Contains(t, out.Solution.Kept, wantKept[0])
	assert.Contains(t, out.Solution.Blocked, wantBlocked[0])

	violations := decoder.Verify(decoder.VerifyInput{Grid: g, Tiling: grid.Square}, out.Solution)
	assert.Empty(t, violations)
}

// TestSolve_FourQuadrants is scenario B.
func TestSolve_FourQuadrants(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(0), reg(1), reg(1)},
		{reg(0), reg(0), reg(1), reg(1)},
		{reg(2), reg(2), reg(3), reg(3)},
		{reg(2), reg(2), reg(3), reg(3)},
	})

	out, err := Solve(g, grid.Square)
	require.NoError(t, err)
	require.True(t, out.IsSat())

	violations := decoder.Verify(decoder.VerifyInput{Grid: g, Tiling: grid.Square}, out.Solution)
	assert.Empty(t, violations)

	// Every kept edge must lie within a single quadrant, never across a
	// quadrant boundary.
	for _, e := range out.Solution.Kept {
		cu := out.Solution.Colors[e.A.Row][e.A.Col]
		cv := out.Solution.Colors[e.B.Row][e.B.Col]
		assert.Equal(t, cu, cv)
	}
}

// TestSolve_DiagonalIsUnsat is scenario C.
func TestSolve_DiagonalIsUnsat(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(1)},
		{reg(1), reg(0)},
	})

	out, err := Solve(g, grid.Square)
	require.NoError(t, err)
	assert.True(t, out.IsUnsat())
	assert.Nil(t, out.Solution)
}

// TestSolve_BlankGridIsTrivial is scenario D: the all-blank fast path must
// not invoke a SAT backend, so this also exercises that Solve short-circuits
// before ever building a formula.Builder.
func TestSolve_BlankGridIsTrivial(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{blk(), blk(), blk()},
		{blk(), blk(), blk()},
		{blk(), blk(), blk()},
	})

	out, err := Solve(g, grid.Square)
	require.NoError(t, err)
	require.True(t, out.IsSat())
	assert.Len(t, out.Solution.Kept, 12)
	assert.Empty(t, out.Solution.Blocked)
	for _, row := range out.Solution.Colors {
		for _, c := range row {
			assert.Equal(t, uint32(0), c)
		}
	}
}

// TestSolve_DistanceLowerBound is scenario E.
func TestSolve_DistanceLowerBound(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(0), reg(0), reg(0), reg(0)},
	})
	pc := grid.PathConstraint{
		Name:    "root",
		Root:    grid.Point{Row: 0, Col: 0},
		MinDist: map[grid.Point]int{{Row: 0, Col: 4}: 4},
	}

	out, err := Solve(g, grid.Square, WithPathConstraint(pc))
	require.NoError(t, err)
	require.True(t, out.IsSat())

	assert.Len(t, out.Solution.Kept, 4)
	require.Contains(t, out.Solution.Distances, "root")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, out.Solution.Distances["root"][0])

	violations := decoder.Verify(decoder.VerifyInput{
		Grid:            g,
		Tiling:          grid.Square,
		PathConstraints: []grid.PathConstraint{pc},
	}, out.Solution)
	assert.Empty(t, violations)
}

// TestSolve_WallDensityFloorForcesUnsat is scenario F.
func TestSolve_WallDensityFloorForcesUnsat(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{blk(), blk()},
		{blk(), blk()},
	})

	out, err := Solve(g, grid.Square, WithWallDensity(0.75))
	require.NoError(t, err)
	assert.True(t, out.IsUnsat())
}

func TestSolve_OriginFarDistanceHorizon(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{grid.OriginMarker(0), reg(0), reg(0), grid.FarMarker(0)},
	})

	out, err := Solve(g, grid.Square, WithDistanceHorizon(2))
	require.NoError(t, err)
	require.True(t, out.IsSat())

	violations := decoder.Verify(decoder.VerifyInput{
		Grid:            g,
		Tiling:          grid.Square,
		DistanceHorizon: 2,
	}, out.Solution)
	assert.Empty(t, violations)
}

func TestSolve_DistanceHorizonWithoutOriginIsError(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{{reg(0), reg(0)}})

	out, err := Solve(g, grid.Square, WithDistanceHorizon(2))
	assert.ErrorIs(t, err, ErrDistanceHorizonWithoutOrigin)
	assert.Equal(t, ErrDistanceHorizonWithoutOrigin, out.Err)
}

func TestSolve_UnknownTilingIsError(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{{reg(0), reg(0)}})

	_, err := Solve(g, grid.Tiling(99))
	assert.ErrorIs(t, err, grid.ErrUnknownTiling)
}

func TestSolve_IncrementalBackendAgreesWithBatch(t *testing.T) {
	g := mustGrid(t, [][]grid.Color{
		{reg(0), reg(1)},
		{reg(0), reg(1)},
	})

	batchOut, err := Solve(g, grid.Square, WithBackend(BackendBatch))
	require.NoError(t, err)
	incOut, err := Solve(g, grid.Square, WithBackend(BackendIncremental))
	require.NoError(t, err)

	require.True(t, batchOut.IsSat())
	require.True(t, incOut.IsSat())
	assert.ElementsMatch(t, batchOut.Solution.Kept, incOut.Solution.Kept)
}
