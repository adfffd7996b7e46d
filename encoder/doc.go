// Package encoder builds the CNF formula for one grid-coloring instance:
// color variables for blank cells, edge variables for every neighboring
// pair, disconnection clauses between differently-colored neighbors, degree
// bounds on kept edges, a rooted-spanning-tree connectivity gadget per
// active color, a bounded-reachability ladder for distance lower bounds,
// and a wall-density cardinality constraint.
//
// Encode never invokes a solver; it only pushes clauses through a
// formula.Builder and reports whether it detected an unsatisfiable instance
// by construction: multiple origins (found before any clause is added), or
// an isolated fixed-color cell with no same-color candidate neighbor (found
// part-way through, leaving the clause set incomplete).
package encoder
