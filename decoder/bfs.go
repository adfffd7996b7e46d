package decoder

import "github.com/jacksonloper/gridsat/grid"

// buildKeptAdjacency turns a flat kept-edge list into a per-point neighbor
// list, since the BFS below needs to walk outward from a root rather than
// test edge membership one pair at a time.
func buildKeptAdjacency(kept []grid.Edge) map[grid.Point][]grid.Point {
	adj := make(map[grid.Point][]grid.Point, len(kept))
	for _, e := range kept {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	return adj
}

// bfsDistances runs a breadth-first search from root over the kept-edge
// graph and returns a width x height matrix of hop-distances, -1 for any
// cell root cannot reach.
func bfsDistances(adj map[grid.Point][]grid.Point, root grid.Point, width, height int) [][]int {
	dist := make([][]int, height)
	for r := range dist {
		dist[r] = make([]int, width)
		for c := range dist[r] {
			dist[r][c] = -1
		}
	}
	if !root.InBounds(width, height) {
		return dist
	}

	dist[root.Row][root.Col] = 0
	queue := []grid.Point{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		d := dist[v.Row][v.Col]
		for _, n := range adj[v] {
			if dist[n.Row][n.Col] != -1 {
				continue
			}
			dist[n.Row][n.Col] = d + 1
			queue = append(queue, n)
		}
	}

	return dist
}
