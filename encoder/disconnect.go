package encoder

import (
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// candidateColors returns the colors a cell could end up holding: a
// singleton for a fixed cell, the full palette for a blank one.
func candidateColors(g *grid.ColorGrid, palette []uint32, p grid.Point) []uint32 {
	cell := g.At(p)
	if cell.IsFixed() {
		return []uint32{cell.EffectiveColor()}
	}

	return palette
}

// buildDisconnection emits, for every edge and every pair of differing
// candidate colors at its endpoints, a clause forcing the edge blocked
// whenever the endpoints actually hold those colors. A fixed endpoint
// contributes no color literal of its own — its color is baked into which
// (cu, cv) pairs are even considered, per candidateColors. edgeOrder fixes
// the iteration order (see buildEdgeVars): ranging edgeVars directly would
// make clause order vary between runs.
func buildDisconnection(b *formula.Builder, g *grid.ColorGrid, palette []uint32, colorVars map[cellColorKey]satsolver.Var, edgeVars map[grid.Edge]satsolver.Var, edgeOrder []grid.Edge) {
	for _, e := range edgeOrder {
		ev := edgeVars[e]
		candU := candidateColors(g, palette, e.A)
		candV := candidateColors(g, palette, e.B)
		for _, cu := range candU {
			for _, cv := range candV {
				if cu == cv {
					continue
				}
				var lits []satsolver.Lit
				if g.At(e.A).IsBlank() {
					lits = append(lits, colorVars[cellColorKey{P: e.A, Color: cu}].Neg())
				}
				if g.At(e.B).IsBlank() {
					lits = append(lits, colorVars[cellColorKey{P: e.B, Color: cv}].Neg())
				}
				lits = append(lits, ev.Neg())
				b.Adapter().AddClause(lits...)
			}
		}
	}
}
