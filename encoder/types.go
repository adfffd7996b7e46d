package encoder

import (
	"github.com/jacksonloper/gridsat/grid"
	"github.com/jacksonloper/gridsat/satsolver"
)

// Options carries everything Encode needs beyond the grid itself. The
// caller (the solve package) is responsible for folding any origin/far
// distance requirement into PathConstraints before calling Encode —
// Encode treats every entry identically.
type Options struct {
	Tiling          grid.Tiling
	WallDensity     float64 // fraction in [0,1]; 0 disables the floor
	PathConstraints []grid.PathConstraint
}

// cellColorKey indexes the color-choice variable for one blank cell and
// one candidate color.
type cellColorKey struct {
	P     grid.Point
	Color uint32
}

// Stats reports the cumulative variable and clause counts contributed by
// one Encode call, read off the underlying satsolver.Adapter after
// encoding completes (or short-circuits to a design unsat).
type Stats struct {
	NumVars    int
	NumClauses int
}

// Result is Encode's output: the variable maps the decoder needs to read
// an assignment back into edges and colors, plus the palette that was
// actually encoded and a design-time unsat verdict.
//
// DesignUnsat is true when Encode proved the instance unsatisfiable by
// construction (duplicate origin markers, or a fixed-color cell with no
// same-color candidate neighbor) without adding every clause or touching
// the solver. Callers must check DesignUnsat before calling Solve on the
// adapter; the clause set in that case is incomplete by design, since
// Encode stops as soon as the verdict is known.
type Result struct {
	EdgeVars    map[grid.Edge]satsolver.Var
	ColorVars   map[cellColorKey]satsolver.Var
	Palette     []uint32
	Width       int
	Height      int
	DesignUnsat bool
	Stats       Stats
}

// ColorVar returns the color-choice variable for a blank cell and one
// palette color, and whether Encode actually allocated one — false for any
// fixed cell (whose color is a compile-time constant, not a variable) or
// for a color outside the active palette. The decoder uses this to read a
// blank cell's chosen color back out of a solved assignment.
func (r *Result) ColorVar(p grid.Point, c uint32) (satsolver.Var, bool) {
	v, ok := r.ColorVars[cellColorKey{P: p, Color: c}]

	return v, ok
}
