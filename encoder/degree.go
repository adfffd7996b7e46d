package encoder

import (
	"github.com/jacksonloper/gridsat/adjacency"
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// sequentialCounterDegreeThreshold is the incident-edge count above which
// atMostThreeKept switches from enumerating every 4-subset (which costs
// C(n,4) clauses) to the sequential-counter at-least-(n-3)-false encoding.
// Only octagon's degree-8 cells can ever reach it; square/hex/Cairo/
// Cairo-bridge max out at 4/6/5/7 and always take the 4-subset path.
const sequentialCounterDegreeThreshold = 7

// buildDegreeBounds emits, for every cell, the "at least one kept edge"
// clause (skipped for a fixed-color cell whose every candidate neighbor
// holds a different fixed color — an intentional singleton island) and
// the "at most three kept edges" clauses (always).
func buildDegreeBounds(b *formula.Builder, g *grid.ColorGrid, tiling grid.Tiling, edgeVars map[grid.Edge]satsolver.Var) error {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Point{Row: r, Col: c}
			neighbors, err := adjacency.Neighbors(tiling, p, g.Width, g.Height)
			if err != nil {
				return err
			}
			incident := make([]satsolver.Lit, 0, len(neighbors))
			for _, n := range neighbors {
				incident = append(incident, edgeVars[grid.NewEdge(p, n)].Pos())
			}

			if couldShareColor(g, p, neighbors) {
				b.Adapter().AddClause(incident...)
			}
			atMostThreeKept(b, incident)
		}
	}

	return nil
}

// couldShareColor reports whether p could plausibly end up the same color
// as at least one of neighbors — always true if p or any neighbor is
// blank, since the solver is then free to choose matching colors.
func couldShareColor(g *grid.ColorGrid, p grid.Point, neighbors []grid.Point) bool {
	cell := g.At(p)
	if cell.IsBlank() {
		return true
	}
	for _, n := range neighbors {
		nc := g.At(n)
		if nc.IsBlank() || nc.EffectiveColor() == cell.EffectiveColor() {
			return true
		}
	}

	return false
}

// atMostThreeKept asserts that at most three of incident are true (kept).
// Trivially satisfied when there are three or fewer; enumerates every
// 4-subset when there are a handful more; falls back to the sequential
// counter for larger neighborhoods.
func atMostThreeKept(b *formula.Builder, incident []satsolver.Lit) {
	n := len(incident)
	if n <= 3 {
		return
	}
	if n > sequentialCounterDegreeThreshold {
		b.AtLeastKFalse(incident, n-3)

		return
	}
	forEach4Subset(n, func(idx [4]int) {
		b.Adapter().AddClause(
			incident[idx[0]].Not(),
			incident[idx[1]].Not(),
			incident[idx[2]].Not(),
			incident[idx[3]].Not(),
		)
	})
}

// forEach4Subset calls f once for every 4-element combination of indices
// in [0,n), in lexicographic order.
func forEach4Subset(n int, f func(idx [4]int)) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					f([4]int{i, j, k, l})
				}
			}
		}
	}
}
