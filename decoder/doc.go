// Package decoder recovers a grid.Solution from a solved satsolver.Adapter
// and the variable maps an encoder.Result exposes: which edges ended up
// kept or blocked, which color each blank cell settled on, and — for every
// requested pathlength constraint — a BFS distance matrix computed over the
// kept-edge graph.
//
// Decode never inspects the CNF itself; it only reads Boolean values back
// off the adapter through the maps the encoder built, so it has no
// knowledge of how those clauses were derived.
package decoder
