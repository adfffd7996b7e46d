package solve

import "github.com/jacksonloper/gridsat/grid"

// Backend selects which satsolver.Adapter implementation Solve drives.
type Backend int

const (
	// BackendBatch buffers clauses and calls gophersat once, on Solve.
	// It is the default: simplest, and fine for one-shot instances.
	BackendBatch Backend = iota
	// BackendIncremental drives gini clause-by-clause, useful for callers
	// who intend to keep solving variations of the same instance.
	BackendIncremental
)

// Options configures a Solve call. Build one with DefaultOptions and
// Option functions rather than a struct literal, so future fields default
// safely.
type Options struct {
	Backend         Backend
	WallDensity     float64
	DistanceHorizon int
	PathConstraints []grid.PathConstraint
}

// DefaultOptions returns the zero-friendly baseline: batch backend, no
// wall-density floor, no distance horizon, no extra path constraints.
func DefaultOptions() Options {
	return Options{Backend: BackendBatch}
}

// Option mutates an Options in place; apply with Solve's variadic opts
// parameter.
type Option func(*Options)

// WithBackend selects the SAT adapter Solve drives.
func WithBackend(b Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithWallDensity sets the minimum fraction of all tiling edges that must
// be blocked. Panics if density is outside [0, 1]; a malformed floor is a
// caller bug, not a solvable-or-not question.
func WithWallDensity(density float64) Option {
	if density < 0 || density > 1 {
		panic("solve: WithWallDensity outside [0, 1]")
	}
	return func(o *Options) { o.WallDensity = density }
}

// WithDistanceHorizon sets K: every far-marked cell must end up strictly
// more than K hops from the origin. Panics if k is negative.
func WithDistanceHorizon(k int) Option {
	if k < 0 {
		panic("solve: WithDistanceHorizon(k<0)")
	}
	return func(o *Options) { o.DistanceHorizon = k }
}

// WithPathConstraint adds one named minimum-distance requirement on top of
// whatever the origin/far markers already imply.
func WithPathConstraint(pc grid.PathConstraint) Option {
	return func(o *Options) { o.PathConstraints = append(o.PathConstraints, pc) }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
