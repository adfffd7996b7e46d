package satsolver

import (
	"github.com/crillab/gophersat/solver"
)

// Batch is the MiniSAT-style Adapter: clauses are buffered as plain int
// slices and handed to gophersat's solver.ParseSlice in one shot when
// Solve is called, matching spec.md section 4.2's "accepts clauses eagerly
// and produces a model on demand" description.
type Batch struct {
	nextVar     int32
	clauses     [][]int
	forcedUnsat bool
	model       []bool // 0-indexed by Var-1, valid only after a successful Solve
	solved      bool
}

// NewBatch returns an empty Batch adapter.
func NewBatch() *Batch {
	return &Batch{nextVar: 1}
}

// NewVar implements Adapter.
func (b *Batch) NewVar() Var {
	v := Var(b.nextVar)
	b.nextVar++

	return v
}

// AddClause implements Adapter.
func (b *Batch) AddClause(lits ...Lit) {
	if len(lits) == 0 {
		b.forcedUnsat = true

		return
	}
	clause := make([]int, len(lits))
	for i, l := range lits {
		clause[i] = int(l)
	}
	b.clauses = append(b.clauses, clause)
}

// Solve implements Adapter.
func (b *Batch) Solve() (bool, error) {
	b.solved = false
	if b.forcedUnsat {
		return false, nil
	}

	problem := solver.ParseSlice(b.clauses)
	status := problem.Solve()
	if status == solver.Unsat {
		return false, nil
	}
	if status != solver.Sat {
		return false, &SolverError{Tag: TagInternal, Backend: "gophersat", Err: errUnexpectedStatus(status)}
	}

	model := problem.Model()
	b.model = make([]bool, len(model))
	copy(b.model, model)
	b.solved = true

	return true, nil
}

// Value implements Adapter.
func (b *Batch) Value(v Var) bool {
	if !b.solved {
		panic(ErrNotSolved.Error())
	}
	idx := int(v) - 1
	if idx < 0 || idx >= len(b.model) {
		panic(ErrUnknownVar.Error())
	}

	return b.model[idx]
}

// NumVars implements Adapter.
func (b *Batch) NumVars() int { return int(b.nextVar) - 1 }

// NumClauses implements Adapter.
func (b *Batch) NumClauses() int {
	if b.forcedUnsat {
		return len(b.clauses) + 1
	}

	return len(b.clauses)
}

// Release implements Adapter. Batch holds no external handle beyond its
// own slices, so Release simply drops references to let the garbage
// collector reclaim the clause buffer promptly on large instances.
func (b *Batch) Release() {
	b.clauses = nil
	b.model = nil
}

// errUnexpectedStatus wraps a gophersat status that is neither Sat nor
// Unsat (e.g. Indet from a resource limit) as an internal solver error.
func errUnexpectedStatus(status solver.Status) error {
	return unexpectedStatusErr{status}
}

type unexpectedStatusErr struct{ status solver.Status }

func (e unexpectedStatusErr) Error() string {
	return "unexpected status: " + e.status.String()
}
