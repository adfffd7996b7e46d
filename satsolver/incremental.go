package satsolver

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Incremental is the CaDiCaL-style Adapter: every literal is pushed through
// gini's native add-literal/zero-terminator protocol as it arrives, rather
// than buffered, so the backend can work incrementally as clauses stream
// in.
type Incremental struct {
	g           *gini.Gini
	nextVar     int32
	numClauses  int
	forcedUnsat bool
	solved      bool
	model       bool // cached verdict of the last Solve
}

// NewIncremental returns an empty Incremental adapter backed by a fresh
// gini.Gini instance.
func NewIncremental() *Incremental {
	return &Incremental{g: gini.New(), nextVar: 1}
}

// NewVar implements Adapter. gini numbers variables from 1 in allocation
// order, the same convention Var uses, so the two counters stay in
// lock-step for the lifetime of this Adapter.
func (inc *Incremental) NewVar() Var {
	inc.g.NewVar()
	v := Var(inc.nextVar)
	inc.nextVar++

	return v
}

// toGiniLit converts our signed Lit into gini's z.Lit.
func toGiniLit(l Lit) z.Lit {
	gv := z.Var(l.Var())
	if l.Negated() {
		return gv.Neg()
	}

	return gv.Pos()
}

// AddClause implements Adapter.
func (inc *Incremental) AddClause(lits ...Lit) {
	if len(lits) == 0 {
		inc.forcedUnsat = true

		return
	}
	for _, l := range lits {
		inc.g.Add(toGiniLit(l))
	}
	inc.g.Add(0) // zero-terminator, per gini's native protocol
	inc.numClauses++
}

// Solve implements Adapter.
func (inc *Incremental) Solve() (bool, error) {
	inc.solved = false
	if inc.forcedUnsat {
		return false, nil
	}

	result := inc.g.Solve()
	switch result {
	case 1:
		inc.solved = true
		inc.model = true

		return true, nil
	case -1:
		return false, nil
	default:
		return false, &SolverError{Tag: TagInternal, Backend: "gini", Err: errIndeterminate}
	}
}

// Value implements Adapter.
func (inc *Incremental) Value(v Var) bool {
	if !inc.solved {
		panic(ErrNotSolved.Error())
	}
	if v < 1 || int32(v) >= inc.nextVar {
		panic(ErrUnknownVar.Error())
	}

	return inc.g.Value(z.Var(v).Pos())
}

// NumVars implements Adapter.
func (inc *Incremental) NumVars() int { return int(inc.nextVar) - 1 }

// NumClauses implements Adapter.
func (inc *Incremental) NumClauses() int {
	if inc.forcedUnsat {
		return inc.numClauses + 1
	}

	return inc.numClauses
}

// Release implements Adapter, freeing the gini handle on every exit path
// (SPEC_FULL.md section 7).
func (inc *Incremental) Release() {
	inc.g = nil
}

var errIndeterminate = indeterminateErr{}

type indeterminateErr struct{}

func (indeterminateErr) Error() string { return "solve returned an indeterminate result" }
