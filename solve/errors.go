package solve

import "errors"

// ErrDistanceHorizonWithoutOrigin is returned when a caller configures a
// distance horizon but the grid carries no origin marker to measure from.
var ErrDistanceHorizonWithoutOrigin = errors.New("solve: distance horizon configured but grid has no origin marker")
