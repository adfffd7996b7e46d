package grid

// ColorGrid is the solver's input: a rectangular board of Color values.
// Cells[row][col] holds the Color at that Point; a freshly-built ColorGrid
// deep-copies its input so later external mutation cannot affect a Solve
// call already in flight.
type ColorGrid struct {
	Width, Height int
	Cells         [][]Color
}

// NewColorGrid validates and deep-copies rows into a ColorGrid.
// Returns ErrEmptyGrid if rows has no rows or no columns, ErrNonRectangular
// if any row length differs.
func NewColorGrid(rows [][]Color) (*ColorGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]Color, height)
	for r := 0; r < height; r++ {
		cells[r] = make([]Color, width)
		copy(cells[r], rows[r])
	}

	return &ColorGrid{Width: width, Height: height, Cells: cells}, nil
}

// At returns the Color stored at p. Panics if p is out of bounds; callers
// in hot paths (the encoder) should have already range-checked via
// Point.InBounds when iterating, so this mirrors Go's own slice-bounds
// panic convention rather than threading an error through every lookup.
func (g *ColorGrid) At(p Point) Color {
	return g.Cells[p.Row][p.Col]
}

// InBounds reports whether p lies within this grid.
func (g *ColorGrid) InBounds(p Point) bool {
	return p.InBounds(g.Width, g.Height)
}

// AllBlank reports whether every cell in g is Blank. solve.Solve's fast
// path depends on this check: an all-blank grid with no wall-density floor
// is solved synthetically without invoking a SAT backend.
func (g *ColorGrid) AllBlank() bool {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Cells[r][c].Kind != KindBlank {
				return false
			}
		}
	}

	return true
}

// ActivePalette scans fixed cells and returns the sorted, de-duplicated set
// of Regular/Origin/Far/Unconstrained base colors that appear anywhere.
// Blank cells may only be assigned colors from this set.
func (g *ColorGrid) ActivePalette() []uint32 {
	seen := make(map[uint32]struct{})
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.Cells[r][c]
			if cell.Kind == KindBlank {
				continue
			}
			// Unconstrained/Origin/Far all disconnect against neighbors
			// through their base color, so they count as active too.
			seen[cell.EffectiveColor()] = struct{}{}
		}
	}
	out := make([]uint32, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sortUint32(out)

	return out
}

// sortUint32 sorts a small slice of uint32 ascending without importing the
// generic sort.Slice machinery for a single call site.
func sortUint32(xs []uint32) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// CountOrigins returns the number of cells carrying the Origin marker.
func (g *ColorGrid) CountOrigins() int {
	n := 0
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Cells[r][c].Kind == KindOrigin {
				n++
			}
		}
	}

	return n
}

// FindOrigin returns the unique origin Point and true, or the zero Point
// and false if no cell carries the Origin marker.
func (g *ColorGrid) FindOrigin() (Point, bool) {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Cells[r][c].Kind == KindOrigin {
				return Point{Row: r, Col: c}, true
			}
		}
	}

	return Point{}, false
}

// FarCells returns every Point carrying the Far marker, in row-major order.
func (g *ColorGrid) FarCells() []Point {
	var out []Point
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Cells[r][c].Kind == KindFar {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}

	return out
}
