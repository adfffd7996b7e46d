package adjacency

import "errors"

// ErrUnknownTiling indicates a grid.Tiling value this package does not
// recognize (outside [Square, CairoBridge]).
var ErrUnknownTiling = errors.New("adjacency: unknown tiling")
