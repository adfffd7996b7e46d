// Package adjacency enumerates, for each supported grid.Tiling, the
// in-bounds neighbors of a cell. Every function here is pure and stateless:
// given a Point and the grid dimensions, it returns the same neighbor list
// every time, with no dependency on cell contents.
//
// This package is the direct descendant of gridgraph.GridGraph's
// neighborOffsets/InBounds pair from the teacher repository, generalized
// from two connectivity modes (Conn4, Conn8) to five named tilings, three
// of which (Hex, Cairo, CairoBridge) are parity-sensitive: the offset table
// used for a given cell depends on that cell's row and/or column parity.
//
// Symmetry (v is a neighbor of u iff u is a neighbor of v) is not merely
// expected of these tables, it is enforced by TestSymmetry in
// symmetry_test.go for every tiling, per SPEC_FULL.md section 11 item 2.
package adjacency
