package formula

import (
	"fmt"

	"github.com/jacksonloper/gridsat/satsolver"
)

// Builder layers named variables and small CNF gadgets on top of an
// underlying satsolver.Adapter. A Builder is scoped to the same single
// solve call as the Adapter it wraps.
type Builder struct {
	adapter satsolver.Adapter
	names   map[string]satsolver.Var

	constTrue  satsolver.Lit
	constFalse satsolver.Lit
	haveConst  bool
}

// NewBuilder wraps adapter in a Builder.
func NewBuilder(adapter satsolver.Adapter) *Builder {
	return &Builder{
		adapter: adapter,
		names:   make(map[string]satsolver.Var),
	}
}

// Adapter returns the underlying satsolver.Adapter, for callers that need
// to add a raw clause the higher-level gadgets don't cover.
func (b *Builder) Adapter() satsolver.Adapter { return b.adapter }

// NewVar allocates a fresh, unnamed variable.
func (b *Builder) NewVar() satsolver.Var { return b.adapter.NewVar() }

// NamedVar allocates a fresh variable and associates it with name for
// debugging and de-duplication. Panics if name was already registered.
func (b *Builder) NamedVar(name string) satsolver.Var {
	if _, exists := b.names[name]; exists {
		panic(fmt.Sprintf("%v: %q", ErrDuplicateName, name))
	}
	v := b.adapter.NewVar()
	b.names[name] = v

	return v
}

// Lookup returns the variable registered under name. Panics if name was
// never registered.
func (b *Builder) Lookup(name string) satsolver.Var {
	v, ok := b.names[name]
	if !ok {
		panic(fmt.Sprintf("%v: %q", ErrUnknownName, name))
	}

	return v
}

// Unit asserts lit unconditionally.
func (b *Builder) Unit(lit satsolver.Lit) {
	b.adapter.AddClause(lit)
}

// Implies asserts a -> c as the single binary clause (not a) or c.
func (b *Builder) Implies(a, c satsolver.Lit) {
	b.adapter.AddClause(a.Not(), c)
}

// ExactlyOne asserts that exactly one literal in lits is true: an
// at-least-one clause plus the pairwise at-most-one encoding. Intended for
// the small neighborhoods arising in this problem, where O(n^2) clauses is
// acceptable.
func (b *Builder) ExactlyOne(lits []satsolver.Lit) {
	b.adapter.AddClause(lits...)
	b.AtMostOne(lits)
}

// AtMostOne asserts that at most one literal in lits is true, via the
// pairwise encoding: for every pair (i,j), not both can be true.
func (b *Builder) AtMostOne(lits []satsolver.Lit) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			b.adapter.AddClause(lits[i].Not(), lits[j].Not())
		}
	}
}

// True returns a literal that is forced true in every model. Materialized
// once per Builder and cached.
func (b *Builder) True() satsolver.Lit {
	b.ensureConstants()

	return b.constTrue
}

// False returns a literal that is forced false in every model. Materialized
// once per Builder and cached.
func (b *Builder) False() satsolver.Lit {
	b.ensureConstants()

	return b.constFalse
}

func (b *Builder) ensureConstants() {
	if b.haveConst {
		return
	}
	v := b.adapter.NewVar()
	b.adapter.AddClause(v.Neg()) // force v false
	b.constFalse = v.Pos()
	b.constTrue = v.Neg()
	b.haveConst = true
}

// andGate returns a fresh literal z with z <-> (x and y), via the standard
// three-clause Tseitin encoding.
func (b *Builder) andGate(x, y satsolver.Lit) satsolver.Lit {
	z := b.adapter.NewVar().Pos()
	b.adapter.AddClause(z.Not(), x)
	b.adapter.AddClause(z.Not(), y)
	b.adapter.AddClause(x.Not(), y.Not(), z)

	return z
}

// orGate returns a fresh literal z with z <-> (x or y).
func (b *Builder) orGate(x, y satsolver.Lit) satsolver.Lit {
	z := b.adapter.NewVar().Pos()
	b.adapter.AddClause(z.Not(), x, y)
	b.adapter.AddClause(x.Not(), z)
	b.adapter.AddClause(y.Not(), z)

	return z
}

// OrN returns a literal equivalent to the disjunction of lits, folding
// orGate pairwise. Returns False() for an empty slice and the literal
// itself (no fresh gate) for a single-element slice.
func (b *Builder) OrN(lits []satsolver.Lit) satsolver.Lit {
	if len(lits) == 0 {
		return b.False()
	}
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = b.orGate(acc, l)
	}

	return acc
}

// xnorGate returns a fresh literal z with z <-> (x <-> y) — "bit equality".
func (b *Builder) xnorGate(x, y satsolver.Lit) satsolver.Lit {
	z := b.adapter.NewVar().Pos()
	b.adapter.AddClause(x.Not(), y.Not(), z)
	b.adapter.AddClause(x, y, z)
	b.adapter.AddClause(x, y.Not(), z.Not())
	b.adapter.AddClause(x.Not(), y, z.Not())

	return z
}
