package satsolver

import "errors"

// ErrEmptyClause names the condition of an AddClause call with zero
// literals. AddClause returns nothing, so this error is never returned:
// an empty clause force-unsats the instance rather than being silently
// ignored; implementations record this and make every subsequent Solve
// call report unsat without invoking the backend.
var ErrEmptyClause = errors.New("satsolver: empty clause forces unsat")

// ErrUnknownVar's message is what Value panics with when asked about a Var
// this Adapter never allocated. This is a programmer error: fail fast with
// a clear message rather than silently returning false.
var ErrUnknownVar = errors.New("satsolver: unknown variable")

// ErrNotSolved's message is what Value panics with when called before
// Solve, or after a Solve call that returned unsat.
var ErrNotSolved = errors.New("satsolver: no model available")

// SolverErrorTag distinguishes classes of solver-level failure so a caller
// can present a tailored message (SPEC_FULL.md section 3.1).
type SolverErrorTag int

const (
	// TagInternal marks an unspecified internal solver failure (assertion,
	// parse error in a recorded formula, etc).
	TagInternal SolverErrorTag = iota
	// TagOOM marks a failure attributable to resource exhaustion.
	TagOOM
)

// SolverError is returned when the SAT backend itself aborts, distinct
// from a normal unsat verdict. The caller may retry with a smaller
// instance or a different backend.
type SolverError struct {
	Tag     SolverErrorTag
	Backend string
	Err     error
}

func (e *SolverError) Error() string {
	return "satsolver: " + e.Backend + " backend failed: " + e.Err.Error()
}

func (e *SolverError) Unwrap() error { return e.Err }
