package decoder

import (
	"fmt"
	"math"

	"github.com/jacksonloper/gridsat/adjacency"
	"github.com/jacksonloper/gridsat/grid"
)

// VerifyInput bundles the original problem against which a grid.Solution
// is checked: the grid, the tiling it was solved under, and whichever
// optional constraints were in play.
type VerifyInput struct {
	Grid            *grid.ColorGrid
	Tiling          grid.Tiling
	WallDensity     float64
	DistanceHorizon int
	PathConstraints []grid.PathConstraint
}

// Verify re-checks sol against every quantified invariant from the
// testable-properties list, given the original problem in in. It returns
// one error per violation found (per edge, cell or constraint entry) — a
// nil slice means sol is valid. Verify is a test oracle; production code calls Decode and trusts
// the encoding, but test fixtures call Verify to avoid duplicating these
// checks per test.
func Verify(in VerifyInput, sol *grid.Solution) []error {
	g := in.Grid
	var violations []error

	keptSet := make(map[grid.Edge]bool, len(sol.Kept))
	for _, e := range sol.Kept {
		keptSet[e] = true
	}
	blockedSet := make(map[grid.Edge]bool, len(sol.Blocked))
	for _, e := range sol.Blocked {
		blockedSet[e] = true
	}

	allEdges, err := adjacency.AllEdges(in.Tiling, g.Width, g.Height)
	if err != nil {
		return []error{err}
	}

	for _, e := range allEdges {
		cu := sol.Colors[e.A.Row][e.A.Col]
		cv := sol.Colors[e.B.Row][e.B.Col]
		if cu != cv && !blockedSet[e] {
			violations = append(violations, fmt.Errorf("decoder: differently-colored neighbors %v not blocked", e))
		}
		if cu != cv && keptSet[e] {
			violations = append(violations, fmt.Errorf("decoder: kept edge %v joins differently-colored cells", e))
		}
	}

	violations = append(violations, verifyColorConnectivity(in, sol, keptSet)...)
	violations = append(violations, verifyDegreeBounds(in, sol, allEdges, keptSet)...)

	minBlocked := int(math.Ceil(in.WallDensity*float64(len(allEdges)) - 1e-9))
	if len(sol.Blocked) < minBlocked {
		violations = append(violations, fmt.Errorf("decoder: blocked edge count %d below wall-density floor %d", len(sol.Blocked), minBlocked))
	}

	if g.CountOrigins() > 1 {
		violations = append(violations, fmt.Errorf("decoder: input has more than one origin marker"))
	}

	violations = append(violations, verifyFarCells(in, sol)...)
	violations = append(violations, verifyPathConstraints(in, sol)...)
	violations = append(violations, verifyBlankPalette(in, sol)...)

	return violations
}

// verifyColorConnectivity checks invariant 3: every non-exempt fixed color
// induces a connected kept-edge subgraph.
func verifyColorConnectivity(in VerifyInput, sol *grid.Solution, keptSet map[grid.Edge]bool) []error {
	g := in.Grid
	exemptColors := make(map[uint32]bool)
	nonExemptColors := make(map[uint32]bool)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.At(grid.Point{Row: r, Col: c})
			if !cell.IsFixed() {
				continue
			}
			if cell.IsConnectivityExempt() {
				exemptColors[cell.EffectiveColor()] = true
			} else {
				nonExemptColors[cell.EffectiveColor()] = true
			}
		}
	}

	var violations []error
	for color := range nonExemptColors {
		members := membersOfColor(sol, color)
		if len(members) <= 1 {
			continue
		}
		adj := buildKeptAdjacency(filterEdges(keptSet, members))
		reached := bfsDistances(adj, members[0], g.Width, g.Height)
		for _, m := range members {
			if reached[m.Row][m.Col] == -1 {
				violations = append(violations, fmt.Errorf("decoder: color %d is not connected at %v", color, m))
			}
		}
	}

	return violations
}

func membersOfColor(sol *grid.Solution, color uint32) []grid.Point {
	var out []grid.Point
	for r, row := range sol.Colors {
		for c, v := range row {
			if v == color {
				out = append(out, grid.Point{Row: r, Col: c})
			}
		}
	}

	return out
}

func filterEdges(keptSet map[grid.Edge]bool, members []grid.Point) []grid.Edge {
	memberSet := make(map[grid.Point]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}
	var out []grid.Edge
	for e := range keptSet {
		if memberSet[e.A] && memberSet[e.B] {
			out = append(out, e)
		}
	}

	return out
}

// verifyDegreeBounds checks invariant 4: every cell has 1-3 kept edges
// unless it is fixed and every one of its neighbors holds a different fixed
// color.
func verifyDegreeBounds(in VerifyInput, sol *grid.Solution, allEdges []grid.Edge, keptSet map[grid.Edge]bool) []error {
	g := in.Grid
	degree := make(map[grid.Point]int)
	for _, e := range allEdges {
		if keptSet[e] {
			degree[e.A]++
			degree[e.B]++
		}
	}

	var violations []error
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Point{Row: r, Col: c}
			d := degree[p]
			if d >= 1 && d <= 3 {
				continue
			}
			if isSingletonIsland(g, in.Tiling, p) {
				continue
			}
			violations = append(violations, fmt.Errorf("decoder: cell %v has %d kept edges", p, d))
		}
	}

	return violations
}

func isSingletonIsland(g *grid.ColorGrid, tiling grid.Tiling, p grid.Point) bool {
	cell := g.At(p)
	if !cell.IsFixed() {
		return false
	}
	neighbors, err := adjacency.Neighbors(tiling, p, g.Width, g.Height)
	if err != nil {
		return false
	}
	for _, n := range neighbors {
		nc := g.At(n)
		if !nc.IsFixed() || nc.EffectiveColor() == cell.EffectiveColor() {
			return false
		}
	}

	return true
}

// verifyFarCells checks invariant 7: every far-marked input cell lies
// strictly beyond the configured distance horizon from the origin.
func verifyFarCells(in VerifyInput, sol *grid.Solution) []error {
	farCells := in.Grid.FarCells()
	if len(farCells) == 0 {
		return nil
	}
	dist, ok := sol.Distances[grid.OriginDistanceName]
	if !ok {
		return []error{fmt.Errorf("decoder: far cells present but no origin distance matrix was produced")}
	}

	var violations []error
	for _, p := range farCells {
		d := dist[p.Row][p.Col]
		if d != -1 && d <= in.DistanceHorizon {
			violations = append(violations, fmt.Errorf("decoder: far cell %v at distance %d, want > %d", p, d, in.DistanceHorizon))
		}
	}

	return violations
}

// verifyPathConstraints checks invariant 8: every named pathlength
// constraint's minimum distances are honored.
func verifyPathConstraints(in VerifyInput, sol *grid.Solution) []error {
	var violations []error
	for _, pc := range in.PathConstraints {
		dist, ok := sol.Distances[pc.Name]
		if !ok {
			violations = append(violations, fmt.Errorf("decoder: no distance matrix produced for constraint %q", pc.Name))

			continue
		}
		for p, want := range pc.MinDist {
			got := dist[p.Row][p.Col]
			if got != -1 && got < want {
				violations = append(violations, fmt.Errorf("decoder: constraint %q cell %v at distance %d, want >= %d", pc.Name, p, got, want))
			}
		}
	}

	return violations
}

// verifyBlankPalette checks invariant 9: every blank input cell receives a
// color from the active palette.
func verifyBlankPalette(in VerifyInput, sol *grid.Solution) []error {
	g := in.Grid
	palette := g.ActivePalette()
	allowed := make(map[uint32]bool, len(palette))
	for _, c := range palette {
		allowed[c] = true
	}
	if len(palette) == 0 {
		allowed[0] = true // all-blank fast path synthesizes color 0
	}

	var violations []error
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Point{Row: r, Col: c}
			if !g.At(p).IsBlank() {
				continue
			}
			if !allowed[sol.Colors[r][c]] {
				violations = append(violations, fmt.Errorf("decoder: blank cell %v assigned color %d outside active palette", p, sol.Colors[r][c]))
			}
		}
	}

	return violations
}
