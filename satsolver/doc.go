// Package satsolver abstracts a CNF formula behind a small Adapter
// contract: allocate a fresh variable, add a clause, solve, and read back
// the assignment. Three concrete implementations share the contract:
//
//   - Batch wraps github.com/crillab/gophersat/solver, a MiniSAT-style
//     backend that accepts clauses eagerly into a buffer and produces a
//     model on demand when Solve is called.
//   - Incremental wraps github.com/irifrance/gini, a CaDiCaL-style backend
//     driven by an add-literal/zero-terminator protocol: AddClause pushes
//     each literal through gini.Gini.Add and terminates with the zero
//     literal, exactly mirroring gini's own native API.
//   - DIMACS records clauses without solving directly; it renders them to
//     the standard `p cnf <nvars> <nclauses>` text form for debug/export,
//     can parse that text back into a clause list, and (to remain usable
//     as a drop-in Adapter in round-trip tests) delegates an actual Solve
//     call to a freshly-built Batch instance over its recorded clauses.
//
// Every Adapter instance is scoped to one solve call: callers MUST call
// Release when done so the underlying solver handle (particularly gini's)
// is freed on every exit path, matching SPEC_FULL.md section 7's
// scoped-acquisition discipline. Sharing a single Adapter instance across
// goroutines is undefined; two solve calls that do not share an instance
// are safe to run concurrently.
package satsolver
