// Package localsearch - first-improvement 2-opt.
//
// Design:
//   - Deterministic scanning order, no RNG; identical inputs give identical
//     tours.
//   - The input is an open permutation; the closing edge back to t[0] is
//     implicit and participates in every evaluation.
//   - Candidate Δ is computed over the exact arcs the reversal changes:
//     the two boundary arcs plus the re-directed interior of the segment.
//     O(segment) per candidate, which keeps asymmetric instances correct at
//     the price of a heavier scan than the classic O(1) symmetric delta.
//   - Strict sentinels from the tour package; cost stabilized to 1e-9.
//
// Complexity: O(n³) per pass worst case; first improvement restarts the
// scan after every accepted move.
package localsearch

import (
	"errors"

	"github.com/zoscra/pimst-solver/tour"
)

// ErrBadTour reports an input sequence that is not a permutation of the
// matrix's node ids.
var ErrBadTour = errors.New("localsearch: tour is not a permutation")

// TwoOpt improves the open permutation t by first-improvement 2-opt and
// returns the improved tour (t itself is not mutated) with its cycle cost.
// eps is the acceptance tolerance (a move must improve by more than eps);
// maxMoves bounds accepted moves, 0 meaning unlimited.
//
// Errors: ErrBadTour plus the tour package sentinels.
func TwoOpt(costs [][]float64, t []int, eps float64, maxMoves int) ([]int, float64, error) {
	n := len(costs)
	if err := tour.ValidatePermutation(t, n); err != nil {
		return nil, 0, ErrBadTour
	}
	if eps < 0 {
		eps = 0
	}

	cur := tour.Copy(t)
	cost, err := tour.CycleCost(costs, cur)
	if err != nil {
		return nil, 0, err
	}

	moves := 0
	for {
		improved := false

		var (
			i, k  int
			delta float64
		)
		// t[0] stays anchored; reversing [i..k] with 1 <= i < k <= n-1
		// covers every distinct 2-opt neighbor of the cycle.
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				delta = reversalDelta(costs, cur, i, k)
				if delta < -eps {
					reverse(cur, i, k)
					cost, err = tour.CycleCost(costs, cur)
					if err != nil {
						return nil, 0, err
					}
					moves++
					improved = true
					break
				}
			}
		}

		if !improved {
			break
		}
		if maxMoves > 0 && moves >= maxMoves {
			break
		}
	}

	return cur, cost, nil
}

// reversalDelta returns the cycle-cost change of reversing cur[i..k],
// evaluating exactly the arcs the move rewires. Directed costs throughout.
func reversalDelta(costs [][]float64, cur []int, i, k int) float64 {
	n := len(cur)
	var (
		a = cur[i-1]       // node before the segment
		b = cur[i]         // segment head
		c = cur[k]         // segment tail
		d = cur[(k+1)%n]   // node after the segment (may wrap to cur[0])
		j int
	)

	// Old arcs: a→b, interior b→…→c, c→d.
	oldCost := costs[a][b] + costs[c][d]
	for j = i; j < k; j++ {
		oldCost += costs[cur[j]][cur[j+1]]
	}

	// New arcs: a→c, interior reversed c→…→b, b→d.
	newCost := costs[a][c] + costs[b][d]
	for j = k; j > i; j-- {
		newCost += costs[cur[j]][cur[j-1]]
	}

	return newCost - oldCost
}

// reverse flips cur[i..k] in place.
func reverse(cur []int, i, k int) {
	for i < k {
		cur[i], cur[k] = cur[k], cur[i]
		i++
		k--
	}
}
