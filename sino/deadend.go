// Package sino - dead-end detection.
//
// A dead end is a state from which no confident, affordable continuation
// exists. Three triggers, checked in order:
//
//	(a) every candidate scores strictly below Config.DeadEndConfidence;
//	(b) the partial path already costs more than DeadEndCostRatio times an
//	    MST-based lower bound on any complete tour;
//	(c) no decisions exist while nodes remain unvisited (defensive; cannot
//	    occur when the model evaluates every unvisited node).
//
// The lower bound is a real minimum spanning tree computed with Prim's
// algorithm over the symmetrized matrix, scaled by a small constant to
// approximate a closed tour. Any Hamiltonian cycle minus one edge is a
// spanning tree, so the MST weight never exceeds the optimal tour cost and
// the bound stays admissible.
package sino

import (
	"fmt"
	"math"
)

// mstTourFactor scales the MST weight toward a typical tour cost. Tours run
// 1.1-1.2x their MST in practice; 1.15 keeps the excessive-cost trigger from
// firing on merely ordinary detours.
const mstTourFactor = 1.15

// Detector judges whether a search state is unrecoverable.
type Detector struct {
	costs [][]float64
	n     int
	cfg   Config

	// lower is the precomputed tour-cost estimate: MST weight x mstTourFactor.
	lower float64
}

// NewDetector validates inputs and precomputes the lower-bound estimate.
//
// Errors: ErrBadConfig plus the validateCosts sentinels.
//
// Complexity: O(n²) (Prim on a dense matrix).
func NewDetector(costs [][]float64, cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n, err := validateCosts(costs)
	if err != nil {
		return nil, err
	}

	d := &Detector{costs: costs, n: n, cfg: cfg}
	d.lower = mstWeight(costs, n) * mstTourFactor

	return d, nil
}

// IsDeadEnd inspects the sorted decisions and the current partial tour and
// reports whether the state is a dead end, with a machine-checkable reason
// tag. remaining is the number of unvisited nodes. No side effects.
//
// Complexity: O(len(decisions) + len(tour)).
func (d *Detector) IsDeadEnd(decisions []Decision, tour []int, remaining int) (bool, string) {
	// (a) All candidates hopeless.
	if i := bestDecision(decisions); i >= 0 {
		if maxConf := decisions[i].Confidence; maxConf < d.cfg.DeadEndConfidence {
			return true, fmt.Sprintf("all_low_confidence (max=%.2f)", maxConf)
		}
	}

	// (b) Partial path already too expensive relative to the lower bound.
	if len(tour) >= 3 && d.lower > 0 {
		cost := d.pathCost(tour)
		if cost > d.lower*d.cfg.DeadEndCostRatio {
			return true, fmt.Sprintf("excessive_cost (ratio=%.2f)", cost/d.lower)
		}
	}

	// (c) Nothing to decide while work remains.
	if len(decisions) == 0 && remaining > 0 {
		return true, "no_valid_decisions"
	}

	return false, ""
}

// LowerBound exposes the precomputed tour-cost estimate (for tests and
// orchestrator telemetry).
func (d *Detector) LowerBound() float64 { return d.lower }

// pathCost sums the open-path edges of the partial tour.
func (d *Detector) pathCost(tour []int) float64 {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += d.costs[tour[i]][tour[i+1]]
	}
	return sum
}

// mstWeight computes the total weight of a minimum spanning tree over the
// complete graph given by costs, using Prim's algorithm from node 0.
// Asymmetric instances are symmetrized edge-wise with min(c[i][j], c[j][i]),
// which keeps the bound admissible for directed tours as well.
//
// Complexity: O(n²) time, O(n) space.
func mstWeight(costs [][]float64, n int) float64 {
	var (
		inTree = make([]bool, n)
		best   = make([]float64, n)
		total  float64
	)
	for v := range best {
		best[v] = math.Inf(1)
	}
	best[0] = 0

	var (
		it, u, v int
		minW, w  float64
	)
	for it = 0; it < n; it++ {
		// Pick the cheapest fringe vertex.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && best[v] < minW {
				minW, u = best[v], v
			}
		}
		if u < 0 {
			// Unreachable on a finite complete matrix; validateCosts rejects Inf.
			break
		}
		inTree[u] = true
		total += best[u]

		// Relax the fringe through u.
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			w = costs[u][v]
			if costs[v][u] < w {
				w = costs[v][u]
			}
			if w < best[v] {
				best[v] = w
			}
		}
	}

	return total
}
