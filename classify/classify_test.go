// Package classify_test pins the decision boundaries of the layout
// heuristics on hand-built instances: a ring, a line, two synthetic cost
// profiles, and a three-cluster cloud.
package classify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoscra/pimst-solver/classify"
	"github.com/zoscra/pimst-solver/sino"
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

func TestClassify_Circle(t *testing.T) {
	const n = 8
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}

	g, err := classify.Classify(pts, euclid(pts))
	require.NoError(t, err)
	assert.Equal(t, sino.Circle, g)
}

func TestClassify_Diagonal(t *testing.T) {
	pts := [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}

	g, err := classify.Classify(pts, euclid(pts))
	require.NoError(t, err)
	assert.Equal(t, sino.Diagonal, g)
}

func TestClassify_UniformDistances_Grid(t *testing.T) {
	// Near-identical off-diagonal costs: pairwise CV far below the uniform
	// bound. No coordinates, so the matrix alone decides.
	costs := [][]float64{
		{0, 1.00, 1.02, 0.98},
		{1.00, 0, 1.01, 0.99},
		{1.02, 1.01, 0, 1.00},
		{0.98, 0.99, 1.00, 0},
	}

	g, err := classify.Classify(nil, costs)
	require.NoError(t, err)
	assert.Equal(t, sino.Grid, g)
}

func TestClassify_ThreeClusters(t *testing.T) {
	// Three tight pairs far apart, deliberately asymmetric around the
	// centroid so neither the ring nor the line test fires first.
	pts := [][2]float64{
		{0, 0}, {0, 0.2},
		{8, 0}, {8, 0.2},
		{4, 15}, {4, 15.2},
	}

	g, err := classify.Classify(pts, euclid(pts))
	require.NoError(t, err)
	assert.Equal(t, sino.Clustered, g)
}

func TestClassify_SpreadDistances_FallsBackToHint(t *testing.T) {
	// High-variance distances with no coordinates: nothing matches, the hint
	// flows through.
	costs := [][]float64{
		{0, 1, 9, 40},
		{1, 0, 17, 3},
		{9, 17, 0, 60},
		{40, 3, 60, 0},
	}

	g, err := classify.Classify(nil, costs)
	require.NoError(t, err)
	assert.Equal(t, sino.Random, g)

	g, err = classify.ClassifyWithHint(nil, costs, sino.Clustered)
	require.NoError(t, err)
	assert.Equal(t, sino.Clustered, g)
}

func TestClassify_BadInput(t *testing.T) {
	_, err := classify.Classify(nil, nil)
	require.ErrorIs(t, err, classify.ErrBadInput)

	_, err = classify.Classify(nil, [][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, classify.ErrBadInput)

	_, err = classify.Classify(nil, [][]float64{{0, 1}, {1, 0}, {2, 3, 0}})
	require.ErrorIs(t, err, classify.ErrBadInput)

	good := [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	_, err = classify.Classify([][2]float64{{0, 0}}, good)
	require.ErrorIs(t, err, classify.ErrBadInput)
}
