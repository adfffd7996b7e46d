// Package formula layers reusable CNF gadgets on top of a satsolver.Adapter:
// named variables for debugging/de-duplication, exactly-one/at-most-one
// (pairwise encoding), implication, unit clauses, binary integer variables,
// an unsigned less-than comparator over bit vectors, and an at-least-K-false
// sequential counter for cardinality constraints.
//
// Every gadget that is not a single clause (LessThan, AtLeastKFalse, the
// AND/OR/XNOR gates they are built from) materializes its own fresh
// auxiliary variables via Tseitin-style equivalence clauses — the caller
// never has to reason about auxiliary variable lifetime, only about the
// single Lit each gadget hands back.
package formula
