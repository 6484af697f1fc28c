// Package tour - structural validation helpers.
package tour

// ValidatePermutation checks that t is a permutation of {0..n-1} of length
// n: every id present exactly once, none out of range.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t []int, n int) error {
	if n <= 0 || len(t) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidatePartial checks that t is a duplicate-free sequence of ids within
// [0..n-1] whose length does not exceed n. Partial tours returned by an
// infeasible search satisfy exactly this.
//
// Complexity: O(n) time, O(n) space.
func ValidatePartial(t []int, n int) error {
	if n <= 0 || len(t) > n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	for _, v := range t {
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// Copy returns an independent copy of t; nil stays nil.
func Copy(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)
	return out
}
