package encoder

import "errors"

// ErrRootOutOfBounds indicates a PathConstraint's Root point lies outside
// the grid being encoded.
var ErrRootOutOfBounds = errors.New("encoder: path constraint root out of bounds")
