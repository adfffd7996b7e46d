// Package grid defines the data model shared by every other package in
// gridsat: grid coordinates, the tagged Color value, the ColorGrid input,
// canonical Edge keys, pathlength constraints, and the Solution output.
//
// What:
//
//   - Point is a (row, col) coordinate into a rectangular grid.
//   - Color is a sum type: a regular palette entry, or one of three
//     reserved sentinels (Unconstrained, Origin, Far).
//   - ColorGrid pairs grid dimensions with a Width x Height matrix of Color.
//   - Edge canonicalizes an unordered pair of neighboring Points so {u,v}
//     and {v,u} always produce the same map key.
//   - PathConstraint names a root Point and a minimum-hop-distance floor for
//     a subset of cells.
//   - Solution carries the kept/blocked edge lists, the completed color
//     matrix, and any requested distance matrices.
//   - ColorFromSentinel/SentinelForColor (sentinel.go) document and
//     implement the fixed sentinel-integer encoding a CSV collaborator
//     uses to write Unconstrained/Origin/Far cells.
//
// Why:
//
//   - Every other package (adjacency, encoder, decoder, solve) operates on
//     these types; keeping them dependency-free avoids import cycles.
//
// See: SPEC_FULL.md section 5.
package grid
