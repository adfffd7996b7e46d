package adjacency

import (
	"testing"

	"github.com/jacksonloper/gridsat/grid"
)

// TestSymmetry guards against transcription errors in the parity-sensitive
// Hex, Cairo, and Cairo-Bridge tables (SPEC_FULL.md section 11 item 2): for
// every tiling and every pair of in-bounds cells, v is a neighbor of u iff
// u is a neighbor of v.
func TestSymmetry(t *testing.T) {
	const width, height = 7, 7
	tilings := []grid.Tiling{grid.Square, grid.Hex, grid.Octagon, grid.Cairo, grid.CairoBridge}

	for _, tiling := range tilings {
		tiling := tiling
		t.Run(tiling.String(), func(t *testing.T) {
			neighborSet := make(map[grid.Point]map[grid.Point]bool, width*height)
			for r := 0; r < height; r++ {
				for c := 0; c < width; c++ {
					p := grid.Point{Row: r, Col: c}
					nbrs, err := Neighbors(tiling, p, width, height)
					if err != nil {
						t.Fatalf("Neighbors(%v) error: %v", p, err)
					}
					set := make(map[grid.Point]bool, len(nbrs))
					for _, n := range nbrs {
						set[n] = true
					}
					neighborSet[p] = set
				}
			}
			for u, nbrs := range neighborSet {
				for v := range nbrs {
					if !neighborSet[v][u] {
						t.Errorf("%v is a neighbor of %v but not vice versa (tiling=%s)", v, u, tiling)
					}
				}
			}
		})
	}
}

// TestNeighbors_UnknownTiling checks the dispatcher rejects out-of-range
// tilings rather than silently returning an empty list.
func TestNeighbors_UnknownTiling(t *testing.T) {
	_, err := Neighbors(grid.Tiling(99), grid.Point{}, 3, 3)
	if err != ErrUnknownTiling {
		t.Errorf("Neighbors with bad tiling error = %v; want ErrUnknownTiling", err)
	}
}
