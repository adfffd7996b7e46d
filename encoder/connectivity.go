package encoder

import (
	"github.com/jacksonloper/gridsat/adjacency"
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// colorTree holds the per-color bookkeeping buildConnectivity needs while
// it materializes one color's rooted-spanning-tree gadget.
type colorTree struct {
	color      uint32
	candidates []grid.Point      // blank cells, plus non-exempt fixed cells of this color; row-major (= lexicographic) order
	isCand     map[grid.Point]bool
	hardRoot   *grid.Point
	level      map[grid.Point]formula.IntVar
	isRootLit  map[grid.Point]satsolver.Lit // soft-root branch only
	incoming   map[grid.Point][]satsolver.Lit
	colorVars  map[cellColorKey]satsolver.Var
}

// buildConnectivity asserts, for every palette color, that the cells
// holding it form a single connected region via an oriented rooted
// spanning tree plus a level-ordering acyclicity gadget. Returns unsat=true
// the moment it proves the instance infeasible by construction (a fixed
// cell of this color has no candidate neighbor that could parent it).
func buildConnectivity(b *formula.Builder, g *grid.ColorGrid, tiling grid.Tiling, palette []uint32, colorVars map[cellColorKey]satsolver.Var, edgeVars map[grid.Edge]satsolver.Var) (unsat bool, err error) {
	for _, color := range palette {
		tree := newColorTree(g, color)
		tree.colorVars = colorVars
		if len(tree.candidates) == 0 {
			continue // every occurrence of this color is a connectivity-exempt marker
		}

		tree.level = make(map[grid.Point]formula.IntVar, len(tree.candidates))
		nBits := formula.BitsForCount(len(tree.candidates))
		for _, p := range tree.candidates {
			tree.level[p] = b.NewIntVar(nBits)
		}

		if tree.hardRoot != nil {
			b.ForceZero(tree.level[*tree.hardRoot])
		} else {
			tree.buildSoftRoot(b, g)
		}

		if err := tree.buildParents(b, g, tiling, edgeVars); err != nil {
			return false, err
		}

		if tree.countParents(b, g) {
			return true, nil
		}
	}

	return false, nil
}

// newColorTree scans the grid for color's candidates (row-major order,
// which is already lexicographic on grid.Point) and picks a hard root from
// its non-exempt fixed occurrences, if any exist.
func newColorTree(g *grid.ColorGrid, color uint32) *colorTree {
	tree := &colorTree{
		color:    color,
		isCand:   make(map[grid.Point]bool),
		incoming: make(map[grid.Point][]satsolver.Lit),
	}
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Point{Row: r, Col: c}
			cell := g.At(p)
			switch {
			case cell.IsBlank():
				tree.candidates = append(tree.candidates, p)
				tree.isCand[p] = true
			case !cell.IsConnectivityExempt() && cell.EffectiveColor() == color:
				tree.candidates = append(tree.candidates, p)
				tree.isCand[p] = true
				if tree.hardRoot == nil {
					root := p
					tree.hardRoot = &root
				}
			}
		}
	}

	return tree
}

// member returns the literal asserting that p holds tree.color: the
// builder's True constant for a non-exempt fixed candidate, or the cell's
// color-choice variable for a blank one.
func (t *colorTree) member(b *formula.Builder, g *grid.ColorGrid, p grid.Point) satsolver.Lit {
	if g.At(p).IsBlank() {
		return t.colorVars[cellColorKey{P: p, Color: t.color}].Pos()
	}

	return b.True()
}

// buildSoftRoot materializes isRoot[v] <-> member(v) and no lexicographically
// earlier candidate is a member, for the case where this color has no fixed
// non-exempt occurrence to anchor a hard root.
func (t *colorTree) buildSoftRoot(b *formula.Builder, g *grid.ColorGrid) {
	t.isRootLit = make(map[grid.Point]satsolver.Lit, len(t.candidates))
	noneBefore := b.True()
	for _, p := range t.candidates {
		memberLit := t.member(b, g, p)
		// x AND y is built as NOT(NOT x OR NOT y) through the exported OrN.
		isRoot := b.OrN([]satsolver.Lit{memberLit.Not(), noneBefore.Not()}).Not()
		t.isRootLit[p] = isRoot
		noneBefore = b.OrN([]satsolver.Lit{noneBefore.Not(), memberLit}).Not()
		b.ImpliesZero(isRoot, t.level[p])
	}
}

// buildParents allocates the oriented parent variable for every candidate
// edge within this tree and asserts its implications, populating
// t.incoming for countParents.
func (t *colorTree) buildParents(b *formula.Builder, g *grid.ColorGrid, tiling grid.Tiling, edgeVars map[grid.Edge]satsolver.Var) error {
	for _, v := range t.candidates {
		neighbors, err := adjacency.Neighbors(tiling, v, g.Width, g.Height)
		if err != nil {
			return err
		}
		for _, u := range neighbors {
			if !t.isCand[u] {
				continue
			}
			pv := b.NewVar()
			ev := edgeVars[grid.NewEdge(u, v)]
			b.Implies(pv.Pos(), ev.Pos())
			b.Implies(pv.Pos(), t.member(b, g, u))
			b.Implies(pv.Pos(), t.member(b, g, v))
			b.Implies(pv.Pos(), b.LessThan(t.level[u], t.level[v]))
			t.incoming[v] = append(t.incoming[v], pv.Pos())
		}
	}

	return nil
}

// countParents asserts the parent-counting rules for every candidate and
// reports whether it proved the instance unsat: a hard-rooted, non-root,
// fixed candidate with zero possible parent edges can never join the tree.
func (t *colorTree) countParents(b *formula.Builder, g *grid.ColorGrid) (unsat bool) {
	for _, v := range t.candidates {
		incoming := t.incoming[v]
		isHardRoot := t.hardRoot != nil && *t.hardRoot == v
		isFixedNonExempt := g.At(v).IsFixed() && !g.At(v).IsConnectivityExempt()

		switch {
		case isHardRoot:
			for _, pv := range incoming {
				b.Unit(pv.Not())
			}
		case t.hardRoot != nil && isFixedNonExempt:
			if len(incoming) == 0 {
				return true
			}
			b.ExactlyOne(incoming)
		case t.hardRoot != nil:
			b.AtMostOne(incoming)
			memberLit := t.member(b, g, v)
			lits := append([]satsolver.Lit{memberLit.Not()}, incoming...)
			b.Adapter().AddClause(lits...)
		default:
			b.AtMostOne(incoming)
			isRoot := t.isRootLit[v]
			for _, pv := range incoming {
				b.Implies(isRoot, pv.Not())
			}
			memberLit := t.member(b, g, v)
			lits := append([]satsolver.Lit{memberLit.Not(), isRoot}, incoming...)
			b.Adapter().AddClause(lits...)
		}
	}

	return false
}
