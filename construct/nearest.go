// Package construct - nearest-neighbor construction.
//
// Deterministic greedy: from the current node always move to the cheapest
// unvisited node, breaking cost ties toward the lowest index. Always
// completes; quality is whatever greed buys (typically within ~25% of
// optimal on metric instances).
//
// Complexity: O(n²) time, O(n) space.
package construct

import "math"

// NearestNeighbor builds a complete open tour from start by repeatedly
// moving to the cheapest unvisited node.
//
// Errors: ErrBadMatrix, ErrStartOutOfRange.
func NearestNeighbor(costs [][]float64, start int) ([]int, error) {
	n, err := checkMatrix(costs)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	return greedy(costs, n, start), nil
}

// greedy runs the shared greedy loop over an arbitrary (possibly reweighted)
// matrix. The matrix is trusted; callers validate.
func greedy(w [][]float64, n, start int) []int {
	var (
		visited = make([]bool, n)
		out     = make([]int, 0, n)
		current = start
	)
	visited[start] = true
	out = append(out, start)

	var (
		step, v, best int
		bestW         float64
	)
	for step = 1; step < n; step++ {
		best, bestW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			// Strict < keeps the lowest index on ties.
			if !visited[v] && w[current][v] < bestW {
				bestW, best = w[current][v], v
			}
		}
		visited[best] = true
		out = append(out, best)
		current = best
	}

	return out
}

// checkMatrix validates shape and entries and returns the order n.
func checkMatrix(costs [][]float64) (int, error) {
	if costs == nil {
		return 0, ErrBadMatrix
	}
	n := len(costs)
	if n < 3 {
		return 0, ErrBadMatrix
	}
	for i := 0; i < n; i++ {
		if len(costs[i]) != n {
			return 0, ErrBadMatrix
		}
		for j := 0; j < n; j++ {
			x := costs[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
				return 0, ErrBadMatrix
			}
		}
	}
	return n, nil
}
