// Package classify - the graph-type heuristics.
//
// Deterministic, side-effect free, O(n²) over the pairwise distances.
// Sentinel errors only; thresholds are package constants so tests can pin
// the decision boundaries.
package classify

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/zoscra/pimst-solver/sino"
)

// Decision thresholds. Values follow the reference classifier: a ring of
// points keeps its centroid distances within a few percent, and a uniform
// lattice keeps the pairwise-distance CV well under one.
const (
	// circleCV bounds the coefficient of variation of centroid distances.
	circleCV = 0.15
	// uniformCV bounds the coefficient of variation of pairwise distances.
	uniformCV = 0.30
	// collinearRatio bounds minor/major axis variance for a line layout.
	collinearRatio = 0.02
	// clusterGapRatio is the q90/q10 pairwise-distance ratio above which the
	// distribution is treated as bimodal (tight groups far apart).
	clusterGapRatio = 5.0
	// cvEps guards divisions on degenerate (all-coincident) layouts.
	cvEps = 1e-10
)

// ErrBadInput reports a nil/ill-shaped matrix, fewer than 3 nodes, or a
// coordinate slice not matching the matrix order.
var ErrBadInput = errors.New("classify: invalid input")

// Classify returns the structural graph type of the instance. coords may be
// nil; the cost matrix alone then only distinguishes grid-like uniformity
// from random.
func Classify(coords [][2]float64, costs [][]float64) (sino.GraphType, error) {
	return ClassifyWithHint(coords, costs, sino.Random)
}

// ClassifyWithHint behaves like Classify but returns hint instead of
// sino.Random when no specific layout is recognized, letting orchestrators
// carry prior knowledge through.
func ClassifyWithHint(coords [][2]float64, costs [][]float64, hint sino.GraphType) (sino.GraphType, error) {
	n, err := checkShape(coords, costs)
	if err != nil {
		return hint, err
	}

	if coords != nil {
		if isCircle(coords) {
			return sino.Circle, nil
		}
		if isCollinear(coords) {
			return sino.Diagonal, nil
		}
	}

	// Pairwise distances drive the remaining tests; off-diagonal costs are
	// the distances whether or not coordinates are present.
	ds := pairwise(costs, n)
	cv := variation(ds)

	if cv < uniformCV {
		return sino.Grid, nil
	}
	if coords != nil && isClustered(ds) {
		return sino.Clustered, nil
	}

	return hint, nil
}

// checkShape validates matrix/coordinate shapes and returns the order n.
func checkShape(coords [][2]float64, costs [][]float64) (int, error) {
	if costs == nil {
		return 0, ErrBadInput
	}
	n := len(costs)
	if n < 3 {
		return 0, ErrBadInput
	}
	for i := 0; i < n; i++ {
		if len(costs[i]) != n {
			return 0, ErrBadInput
		}
	}
	if coords != nil && len(coords) != n {
		return 0, ErrBadInput
	}
	return n, nil
}

// isCircle checks whether all points sit at a near-constant radius from
// their centroid.
func isCircle(coords [][2]float64) bool {
	n := len(coords)

	var cx, cy float64
	for _, p := range coords {
		cx += p[0]
		cy += p[1]
	}
	cx /= float64(n)
	cy /= float64(n)

	radii := make([]float64, n)
	for i, p := range coords {
		radii[i] = math.Hypot(p[0]-cx, p[1]-cy)
	}

	return variation(radii) < circleCV
}

// isCollinear checks whether the point cloud is nearly one-dimensional by
// comparing the principal-axis variances of the 2x2 covariance matrix.
func isCollinear(coords [][2]float64) bool {
	n := len(coords)

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range coords {
		xs[i] = p[0]
		ys[i] = p[1]
	}

	var (
		sxx = stat.Variance(xs, nil)
		syy = stat.Variance(ys, nil)
		sxy = stat.Covariance(xs, ys, nil)
	)

	// Eigenvalues of [[sxx sxy] [sxy syy]].
	tr := sxx + syy
	det := sxx*syy - sxy*sxy
	disc := math.Sqrt(math.Max(tr*tr/4-det, 0))
	major := tr/2 + disc
	minor := tr/2 - disc

	if major < cvEps {
		return false // all points coincide; not a line
	}
	return minor/major < collinearRatio
}

// isClustered checks for a strongly bimodal pairwise-distance distribution:
// tight intra-group distances far below the inter-group ones.
func isClustered(sortedDists []float64) bool {
	if len(sortedDists) < 10 {
		return false
	}
	q10 := stat.Quantile(0.10, stat.Empirical, sortedDists, nil)
	q90 := stat.Quantile(0.90, stat.Empirical, sortedDists, nil)
	if q10 < cvEps {
		return false
	}
	return q90/q10 > clusterGapRatio
}

// pairwise collects the upper-triangle off-diagonal costs, sorted ascending.
func pairwise(costs [][]float64, n int) []float64 {
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, costs[i][j])
		}
	}
	sort.Float64s(out)
	return out
}

// variation returns the coefficient of variation (population std dev over
// mean) of xs, zero-guarded.
func variation(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	if mean < cvEps {
		return 0
	}
	// Population statistics: the sample is the whole instance.
	sd := math.Sqrt(stat.PopVariance(xs, nil))
	return sd / mean
}
