package encoder

import (
	"math"
	"sort"

	"github.com/jacksonloper/gridsat/adjacency"
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// buildReachability asserts one bounded-reachability ladder per
// PathConstraint, forbidding every named cell from being reachable from its
// root in fewer kept-edge steps than its minimum distance requires.
func buildReachability(b *formula.Builder, tiling grid.Tiling, width, height int, edgeVars map[grid.Edge]satsolver.Var, constraints []grid.PathConstraint) error {
	for _, pc := range constraints {
		if err := encodeOneLadder(b, tiling, width, height, edgeVars, pc); err != nil {
			return err
		}
	}

	return nil
}

// sortedMinDistCells returns pc.MinDist's keys in canonical Point order, so
// the forbidden-level unit clauses below are emitted in the same order on
// every run regardless of Go's randomized map iteration.
func sortedMinDistCells(pc grid.PathConstraint) []grid.Point {
	cells := make([]grid.Point, 0, len(pc.MinDist))
	for p := range pc.MinDist {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })

	return cells
}

func encodeOneLadder(b *formula.Builder, tiling grid.Tiling, width, height int, edgeVars map[grid.Edge]satsolver.Var, pc grid.PathConstraint) error {
	if !pc.Root.InBounds(width, height) {
		return ErrRootOutOfBounds
	}

	kmax := 0
	for _, d := range pc.MinDist {
		if d-1 > kmax {
			kmax = d - 1
		}
	}
	if kmax <= 0 {
		return nil
	}

	index := func(p grid.Point) int { return p.Row*width + p.Col }
	n := width * height

	// R[i][v]: v is reachable from pc.Root within i kept-edge steps.
	r := make([][]satsolver.Lit, kmax+1)
	r[0] = make([]satsolver.Lit, n)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := grid.Point{Row: row, Col: col}
			if p == pc.Root {
				r[0][index(p)] = b.True()
			} else {
				r[0][index(p)] = b.False()
			}
		}
	}

	for i := 1; i <= kmax; i++ {
		r[i] = make([]satsolver.Lit, n)
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				v := grid.Point{Row: row, Col: col}
				neighbors, err := adjacency.Neighbors(tiling, v, width, height)
				if err != nil {
					return err
				}
				terms := make([]satsolver.Lit, 0, len(neighbors)+1)
				terms = append(terms, r[i-1][index(v)])
				for _, u := range neighbors {
					ev := edgeVars[grid.NewEdge(u, v)]
					// R[i-1][u] AND edge, as NOT(NOT R[i-1][u] OR NOT edge).
					reachThru := b.OrN([]satsolver.Lit{r[i-1][index(u)].Not(), ev.Neg()}).Not()
					terms = append(terms, reachThru)
				}
				r[i][index(v)] = b.OrN(terms)
			}
		}
	}

	for _, cell := range sortedMinDistCells(pc) {
		d := pc.MinDist[cell]
		level := d - 1
		if level > kmax {
			level = kmax
		}
		b.Unit(r[level][index(cell)].Not())
	}

	return nil
}

// buildWallDensity asserts the optional wall-density floor: at least
// ceil(density * |E|) of the edge variables are false (blocked). edgeOrder
// fixes the literal order fed to AtLeastKFalse — its sequential-counter
// gadget allocates fresh auxiliary variables in the order its input
// literals arrive, so ranging edgeVars directly would make auxiliary
// variable IDs (not just clause order) vary between runs.
func buildWallDensity(b *formula.Builder, density float64, edgeVars map[grid.Edge]satsolver.Var, edgeOrder []grid.Edge) {
	if density <= 0 {
		return
	}
	lits := make([]satsolver.Lit, 0, len(edgeOrder))
	for _, e := range edgeOrder {
		lits = append(lits, edgeVars[e].Pos())
	}
	k := ceilFraction(density, len(lits))
	b.AtLeastKFalse(lits, k)
}

// ceilFraction returns ceil(p * n) for p in [0,1]. The small epsilon
// absorbs float64 rounding at exact fractions like 3/4 so 0.75*4 reads as
// 3.0, not 2.9999999999999996.
func ceilFraction(p float64, n int) int {
	k := int(math.Ceil(p*float64(n) - 1e-9))
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}

	return k
}
