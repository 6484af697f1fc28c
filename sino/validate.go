// Package sino - input validation shared by Explorer and collaborators.
//
// Deterministic, side-effect-free checks returning only sentinel errors.
// Validation runs once before the search loop; the hot path trusts it.
package sino

import "math"

// diagTol is the structural tolerance for the zero-diagonal check.
const diagTol = 1e-12

// validateCosts verifies the cost matrix shape and entries and returns the
// matrix order n.
//
// Contract:
//   - costs must be non-nil, square, with n >= 3.
//   - Entries must be finite and non-negative; costs[i][i] must be ~0.
//   - Asymmetry is allowed (ATSP instances).
//
// Complexity: O(n²).
func validateCosts(costs [][]float64) (int, error) {
	if costs == nil {
		return 0, ErrDimensionMismatch
	}
	n := len(costs)
	if n < 3 {
		return 0, ErrTooFewNodes
	}

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return 0, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			x = costs[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, ErrDimensionMismatch
			}
			if x < 0 {
				return 0, ErrNegativeWeight
			}
		}
		if math.Abs(costs[i][i]) > diagTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	return n, nil
}

// validateStart verifies start is in [0..n-1].
//
// Complexity: O(1).
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	return nil
}
