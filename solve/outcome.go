package solve

import "github.com/jacksonloper/gridsat/grid"

// Outcome is Solve's result: exactly one of Solution, Unsat, or Err is
// populated. Err duplicates Solve's second return value so a caller that
// stores or forwards an Outcome alone (a channel, a batch-job record)
// still sees the complete sum type without carrying the error separately.
type Outcome struct {
	Solution *grid.Solution
	Unsat    bool
	Err      error
}

// IsSat reports whether Outcome carries a satisfying assignment.
func (o Outcome) IsSat() bool { return o.Solution != nil }

// IsUnsat reports whether the instance was proven infeasible, whether by
// construction (encoder.Result.DesignUnsat) or by the SAT backend.
func (o Outcome) IsUnsat() bool { return o.Unsat }
