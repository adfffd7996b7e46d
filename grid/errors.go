package grid

import "errors"

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrDimensionMismatch indicates a supplied Cells matrix does not match
	// the declared Width/Height.
	ErrDimensionMismatch = errors.New("grid: cell matrix dimensions do not match Width/Height")

	// ErrPointOutOfBounds indicates a Point falls outside [0,Height)x[0,Width).
	ErrPointOutOfBounds = errors.New("grid: point out of bounds")

	// ErrUnknownTiling indicates a Tiling value outside the five supported tags.
	ErrUnknownTiling = errors.New("grid: unknown tiling")

	// ErrBadSentinel indicates an integer outside the CSV/collaborator
	// interchange encoding ColorFromSentinel understands.
	ErrBadSentinel = errors.New("grid: value is not a valid sentinel-encoded color")
)
