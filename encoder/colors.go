package encoder

import (
	"github.com/jacksonloper/gridsat/formula"
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// activePalette returns the palette Encode should use. A grid with no fixed
// cell anywhere yields an empty grid.ActivePalette result; per the decoded
// ambiguity in section 9 of the specification this is treated as
// equivalent to all-blank, so Encode substitutes a synthetic single-color
// palette rather than reporting an empty-palette unsat. A non-blank grid
// always has a non-empty active palette, since every fixed cell — including
// Unconstrained/Origin/Far markers — contributes its effective color.
func activePalette(g *grid.ColorGrid) []uint32 {
	palette := g.ActivePalette()
	if len(palette) == 0 {
		return []uint32{0}
	}

	return palette
}

// buildColorVars allocates cellColor[p,c] for every blank cell and every
// palette color, and asserts exactly-one color per blank cell.
func buildColorVars(b *formula.Builder, g *grid.ColorGrid, palette []uint32) map[cellColorKey]satsolver.Var {
	vars := make(map[cellColorKey]satsolver.Var)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Point{Row: r, Col: c}
			if !g.At(p).IsBlank() {
				continue
			}
			lits := make([]satsolver.Lit, 0, len(palette))
			for _, color := range palette {
				v := b.NewVar()
				vars[cellColorKey{P: p, Color: color}] = v
				lits = append(lits, v.Pos())
			}
			b.ExactlyOne(lits)
		}
	}

	return vars
}
