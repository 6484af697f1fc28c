// Package tour - cost accumulation helpers.
//
// Design:
//   - Strict per-edge validation (shape, range, NaN, negativity) even when
//     callers validated the matrix upfront; misuse maps to sentinels.
//   - Stable summation: results rounded to 1e-9.
//
// Complexity: O(len(t)) time, O(1) extra space.
package tour

import "math"

// roundScale controls cost stabilization precision (1e-9).
const roundScale = 1e9

// Cost sums the consecutive edges of the open sequence t over costs.
// A sequence of fewer than two nodes costs zero.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight.
func Cost(costs [][]float64, t []int) (float64, error) {
	n, err := order(costs)
	if err != nil {
		return 0, err
	}

	var (
		sum     float64
		i, u, v int
		w       float64
	)
	for i = 0; i+1 < len(t); i++ {
		u, v = t[i], t[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w = costs[u][v]
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// CycleCost sums the edges of t plus the closing edge from the last node
// back to the first. t must hold at least two nodes.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight.
func CycleCost(costs [][]float64, t []int) (float64, error) {
	if len(t) < 2 {
		return 0, ErrDimensionMismatch
	}
	open, err := Cost(costs, t)
	if err != nil {
		return 0, err
	}

	n := len(costs)
	u, v := t[len(t)-1], t[0]
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}
	w := costs[u][v]
	if math.IsNaN(w) {
		return 0, ErrDimensionMismatch
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return round1e9(open + w), nil
}

// order verifies that costs is a non-empty square matrix and returns its
// order n.
func order(costs [][]float64) (int, error) {
	if costs == nil {
		return 0, ErrDimensionMismatch
	}
	n := len(costs)
	for i := 0; i < n; i++ {
		if len(costs[i]) != n {
			return 0, ErrNonSquare
		}
	}
	return n, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
