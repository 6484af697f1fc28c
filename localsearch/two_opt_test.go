// Package localsearch_test exercises 2-opt through the public API: crossing
// removal, epsilon/move-budget semantics, asymmetric correctness, and
// sentinels.
package localsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoscra/pimst-solver/localsearch"
	"github.com/zoscra/pimst-solver/tour"
)

// euclid builds the symmetric Euclidean cost matrix of pts.
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			m[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}
	return m
}

// unitSquare is the canonical crossing fixture: visiting the corners in the
// order 0,2,1,3 crosses the diagonals.
var unitSquare = [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestTwoOpt_RemovesCrossing(t *testing.T) {
	costs := euclid(unitSquare)
	crossed := []int{0, 2, 1, 3}

	got, cost, err := localsearch.TwoOpt(costs, crossed, 1e-9, 0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, got)
	assert.InDelta(t, 4.0, cost, 1e-9)

	// Input is not mutated.
	assert.Equal(t, []int{0, 2, 1, 3}, crossed)
}

func TestTwoOpt_OptimalStaysPut(t *testing.T) {
	costs := euclid(unitSquare)
	best := []int{0, 1, 2, 3}

	got, cost, err := localsearch.TwoOpt(costs, best, 1e-9, 0)
	require.NoError(t, err)
	assert.Equal(t, best, got)
	assert.InDelta(t, 4.0, cost, 1e-9)
}

func TestTwoOpt_MoveBudget(t *testing.T) {
	costs := euclid(unitSquare)

	// A single allowed move still fixes the one crossing.
	got, cost, err := localsearch.TwoOpt(costs, []int{0, 2, 1, 3}, 1e-9, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.InDelta(t, 4.0, cost, 1e-9)
}

func TestTwoOpt_LargeEpsilonFreezes(t *testing.T) {
	costs := euclid(unitSquare)
	crossed := []int{0, 2, 1, 3}

	// The crossing saves ~0.83; an epsilon above that rejects every move.
	got, cost, err := localsearch.TwoOpt(costs, crossed, 1.0, 0)
	require.NoError(t, err)
	assert.Equal(t, crossed, got)

	want, err := tour.CycleCost(costs, crossed)
	require.NoError(t, err)
	assert.InDelta(t, want, cost, 1e-9)
}

func TestTwoOpt_NeverWorsens(t *testing.T) {
	// Asymmetric instance: deltas must be evaluated over directed arcs.
	costs := [][]float64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}
	start := []int{0, 2, 3, 1}

	before, err := tour.CycleCost(costs, start)
	require.NoError(t, err)

	got, cost, err := localsearch.TwoOpt(costs, start, 1e-9, 0)
	require.NoError(t, err)
	require.NoError(t, tour.ValidatePermutation(got, 4))
	assert.LessOrEqual(t, cost, before)

	// The reported cost is the real cycle cost of the returned tour.
	check, err := tour.CycleCost(costs, got)
	require.NoError(t, err)
	assert.InDelta(t, check, cost, 1e-9)
}

func TestTwoOpt_Determinism_Repeat3(t *testing.T) {
	costs := euclid(unitSquare)

	first, firstCost, err := localsearch.TwoOpt(costs, []int{0, 2, 1, 3}, 1e-9, 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		got, cost, err := localsearch.TwoOpt(costs, []int{0, 2, 1, 3}, 1e-9, 0)
		require.NoError(t, err)
		require.Equal(t, first, got)
		require.Equal(t, firstCost, cost)
	}
}

func TestTwoOpt_BadTour(t *testing.T) {
	costs := euclid(unitSquare)

	_, _, err := localsearch.TwoOpt(costs, []int{0, 1, 2}, 1e-9, 0) // too short
	require.ErrorIs(t, err, localsearch.ErrBadTour)

	_, _, err = localsearch.TwoOpt(costs, []int{0, 1, 2, 2}, 1e-9, 0) // duplicate
	require.ErrorIs(t, err, localsearch.ErrBadTour)

	_, _, err = localsearch.TwoOpt(costs, []int{0, 1, 2, 4}, 1e-9, 0) // out of range
	require.ErrorIs(t, err, localsearch.ErrBadTour)
}
