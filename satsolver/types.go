package satsolver

import "fmt"

// Var is an opaque, positive, 1-indexed Boolean variable identifier,
// allocated by Adapter.NewVar.
type Var int32

// Lit is a signed literal over a Var: positive asserts the variable true,
// negative asserts it false. Lit(0) is never a valid literal; it is
// reserved internally as the clause terminator for the Incremental
// backend's native protocol.
type Lit int32

// Pos returns the positive (asserting) literal for v.
func (v Var) Pos() Lit { return Lit(v) }

// Neg returns the negative (negating) literal for v.
func (v Var) Neg() Lit { return Lit(-v) }

// Var returns the underlying variable of l, regardless of sign.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}

	return Var(l)
}

// Negated reports whether l asserts its variable false.
func (l Lit) Negated() bool { return l < 0 }

// Not returns the negation of l.
func (l Lit) Not() Lit { return -l }

// String renders l in DIMACS style.
func (l Lit) String() string {
	return fmt.Sprintf("%d", int32(l))
}

// Adapter abstracts a CNF formula over one SAT backend. Every Adapter is
// scoped to a single solve call; Release must be invoked exactly once when
// the caller is done, on every exit path.
type Adapter interface {
	// NewVar allocates and returns a fresh variable.
	NewVar() Var

	// AddClause asserts the disjunction of lits. An empty clause forces
	// every subsequent Solve to report unsat without invoking the backend
	// (ErrEmptyClause is not returned as an error here — recording an
	// empty clause is itself the documented force-unsat mechanism).
	AddClause(lits ...Lit)

	// Solve runs the backend. ok is true iff the formula is satisfiable;
	// when ok is false, Value is not callable (ErrNotSolved). err is
	// non-nil only for a genuine backend failure (SolverError), never for
	// a normal unsat verdict.
	Solve() (ok bool, err error)

	// Value returns the Boolean assignment for v after a successful Solve.
	// Panics via ErrUnknownVar-wrapped message if v was never allocated by
	// this Adapter — a programmer error, not a runtime condition.
	Value(v Var) bool

	// NumVars and NumClauses report cumulative counts for diagnostics and
	// SolverError messages.
	NumVars() int
	NumClauses() int

	// Release frees any backend-owned resources. Safe to call more than
	// once.
	Release()
}
