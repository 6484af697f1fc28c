// Package sino - the four-factor confidence model.
//
// A move's confidence is a weighted sum of four independently clipped
// factors, clipped again after combination:
//
//  1. Graph-type factor (default weight 0.40) - table-driven structural
//     expectations per GraphType (see graphFactor).
//  2. Distance factor (0.30) - linear inverse normalization of the edge cost
//     among the currently available candidates.
//  3. Tour-context factor (0.20) - progress-aware bonus/penalty plus a
//     penalty for moves that look like retracing the previous step.
//  4. Local-structure factor (0.10) - rewards candidates whose neighborhood
//     still holds many available nodes, preserving future options.
//
// The model is a pure function of the cost matrix and the tour context: no
// side effects, no randomness. All divisions are epsilon-guarded so that
// degenerate instances (coincident nodes, equal distances) clamp locally
// instead of propagating errors.
//
// Per-node row statistics (sorted distance rows, medians) are memoized in a
// bounded LRU cache: ensemble runs re-score the same rows from many start
// nodes, and the cache keeps that O(n log n) work from repeating while
// bounding memory on large instances.
package sino

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/stat"
)

// confEps guards float comparisons and divisions on degenerate distances.
const confEps = 1e-9

// orthTol is the coordinate-alignment tolerance for the grid orthogonality
// test: a move is orthogonal when either axis delta is below this value.
const orthTol = 1e-6

// rowCacheSize bounds the per-node statistics cache.
const rowCacheSize = 256

// Model scores candidate moves for one instance.
type Model struct {
	costs  [][]float64
	coords [][2]float64 // optional; enables the grid orthogonality rule
	n      int
	graph  GraphType
	cfg    Config

	rows *lru.Cache[int, *rowStats]
}

// rowStats caches per-node distance statistics.
type rowStats struct {
	// sorted holds the distances from the node to every other node, ascending.
	sorted []float64
	// median is the median of the full matrix row, diagonal included.
	median float64
}

// availStats holds the distance distribution from the current node to the
// available candidates. Computed once per EvaluateAll and shared by all
// factor computations of that step.
type availStats struct {
	sorted   []float64
	min, max float64
	median   float64
	p33, p66 float64
}

// NewModel builds a confidence model over costs for the given graph type.
// coords may be nil; without coordinates the grid rule treats every move as
// non-orthogonal (distance-band scoring only).
//
// Errors: ErrBadConfig, plus the validateCosts sentinels; if coords is
// non-nil its length must equal the matrix order (ErrDimensionMismatch).
//
// Complexity: O(n²) validation; scoring is O(remaining) per candidate.
func NewModel(costs [][]float64, coords [][2]float64, graph GraphType, cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n, err := validateCosts(costs)
	if err != nil {
		return nil, err
	}
	if coords != nil && len(coords) != n {
		return nil, ErrDimensionMismatch
	}

	size := rowCacheSize
	if n < size {
		size = n
	}
	rows, err := lru.New[int, *rowStats](size)
	if err != nil {
		return nil, err
	}

	return &Model{costs: costs, coords: coords, n: n, graph: graph, cfg: cfg, rows: rows}, nil
}

// Score returns the combined confidence for moving current→candidate in the
// given context. Pure; result is always in [0,1].
func (m *Model) Score(current, candidate int, ctx *TourContext) float64 {
	avail := m.availableStats(current, ctx)
	return m.score(current, candidate, ctx, avail)
}

// EvaluateAll scores every unvisited node reachable from current and returns
// the decisions sorted by confidence, descending. The sort is stable over an
// id-ascending enumeration, so equal confidences resolve to the lowest node
// id - the package's deterministic tie-break.
//
// Complexity: O(r²) for r remaining nodes (structure factor dominates).
func (m *Model) EvaluateAll(current int, ctx *TourContext) []Decision {
	avail := m.availableStats(current, ctx)
	out := make([]Decision, 0, ctx.Remaining())

	ctx.Unvisited.each(func(candidate int) {
		conf := m.score(current, candidate, ctx, avail)
		d := m.costs[current][candidate]
		out = append(out, Decision{
			Node:       candidate,
			Confidence: conf,
			Type:       m.cfg.Classify(conf),
			Reason:     m.reason(conf, d, avail),
			Cost:       d,
			Checkpoint: noCheckpoint,
		})
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})

	return out
}

// score combines the four clipped factors with the configured weights.
func (m *Model) score(current, candidate int, ctx *TourContext, avail *availStats) float64 {
	var (
		gf = clip01(m.graphFactor(current, candidate, avail))
		df = clip01(m.distanceFactor(current, candidate, avail))
		tf = clip01(m.tourFactor(current, candidate, ctx, avail))
		sf = clip01(m.structureFactor(current, candidate, ctx))
	)

	total := m.cfg.GraphTypeWeight*gf +
		m.cfg.DistanceWeight*df +
		m.cfg.TourContextWeight*tf +
		m.cfg.LocalStructureWeight*sf

	return clip01(total)
}

// graphFactor applies the per-GraphType confidence table. The switch is
// exhaustive over the closed enum.
func (m *Model) graphFactor(current, candidate int, avail *availStats) float64 {
	d := m.costs[current][candidate]

	switch m.graph {
	case Circle:
		// Ring layouts: the nearest neighbor is almost certainly the angular
		// successor; the second nearest is the other ring direction.
		rs := m.row(current)
		if len(rs.sorted) < 2 {
			return 0.60
		}
		switch {
		case d <= rs.sorted[0]+confEps:
			return 0.95
		case d <= rs.sorted[1]+confEps:
			return 0.65
		default:
			return 0.15
		}

	case Grid:
		rs := m.row(current)
		med := rs.median
		if m.isOrthogonal(current, candidate) {
			if d < med {
				return 0.90
			}
			return 0.55
		}
		// Diagonal (or coordinate-free) move: band by the row median.
		switch {
		case d < med*1.5:
			return 0.55
		case d < med*2.5:
			return 0.40
		default:
			return 0.10
		}

	case Clustered:
		if len(avail.sorted) == 0 {
			return 0.50
		}
		switch {
		case d < avail.median*0.7:
			return 0.85 // same cluster
		case d < avail.median*1.5:
			return 0.50 // adjacent cluster
		default:
			return 0.25 // far cluster
		}

	case Diagonal:
		// Nearly collinear layouts: continuing the line is the nearest node.
		rs := m.row(current)
		if len(rs.sorted) < 2 {
			return 0.60
		}
		switch {
		case d <= rs.sorted[0]+confEps:
			return 0.95
		case d <= rs.sorted[1]+confEps:
			return 0.50
		default:
			return 0.15
		}

	case Random:
		if len(avail.sorted) == 0 {
			return 0.50
		}
		switch {
		case d <= avail.min+confEps:
			return 0.60
		case d < avail.p33:
			return 0.45
		case d < avail.p66:
			return 0.30
		default:
			return 0.15
		}

	default:
		return 0.50
	}
}

// distanceFactor inversely normalizes the edge cost among available
// candidates: the nearest candidate scores 1, the farthest 0. Defined as 1
// when all available distances coincide.
func (m *Model) distanceFactor(current, candidate int, avail *availStats) float64 {
	if len(avail.sorted) == 0 {
		return 0.50
	}
	span := avail.max - avail.min
	if span <= confEps {
		return 1.0
	}
	d := m.costs[current][candidate]
	return 1.0 - (d-avail.min)/span
}

// tourFactor starts from a neutral base and adjusts for late-tour economy
// and for moves that retrace the previous step.
func (m *Model) tourFactor(current, candidate int, ctx *TourContext, avail *availStats) float64 {
	conf := 0.60
	d := m.costs[current][candidate]

	// Late in the tour, prefer cheap moves: above-median detours near the end
	// are hard to recover from.
	if ctx.Progress() > 0.8 && len(avail.sorted) > 0 {
		if d < avail.median {
			conf += 0.20
		} else {
			conf -= 0.10
		}
	}

	// Retrace penalty: a candidate much closer to the second-to-last node
	// than to the current one suggests the path is folding back on itself.
	if len(ctx.Tour) >= 2 {
		prev := ctx.Tour[len(ctx.Tour)-2]
		if m.costs[prev][candidate] < d*0.5 {
			conf -= 0.15
		}
	}

	return conf
}

// structureFactor measures how much of the remaining node set stays within
// reach after the move: the fraction of other available nodes lying within
// 1.5x the candidate's own distance, seen from the candidate.
func (m *Model) structureFactor(current, candidate int, ctx *TourContext) float64 {
	d := m.costs[current][candidate]

	nearby := 0
	ctx.Unvisited.each(func(v int) {
		if v == candidate {
			return
		}
		if m.costs[candidate][v] < d*1.5 {
			nearby++
		}
	})

	ratio := 0.5
	if r := ctx.Remaining(); r > 1 {
		ratio = float64(nearby) / float64(r-1)
	}

	return 0.4 + 0.6*ratio
}

// isOrthogonal reports whether the move is axis-aligned. Without
// coordinates the test is unavailable and every move is treated as diagonal.
func (m *Model) isOrthogonal(current, candidate int) bool {
	if m.coords == nil {
		return false
	}
	dx := m.coords[candidate][0] - m.coords[current][0]
	dy := m.coords[candidate][1] - m.coords[current][1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < orthTol || dy < orthTol
}

// availableStats gathers the distance distribution from current to every
// available node. One allocation per call; shared across all candidates of
// the same step by EvaluateAll.
func (m *Model) availableStats(current int, ctx *TourContext) *availStats {
	ds := make([]float64, 0, ctx.Remaining())
	ctx.Unvisited.each(func(v int) {
		ds = append(ds, m.costs[current][v])
	})
	sort.Float64s(ds)

	s := &availStats{sorted: ds}
	if len(ds) == 0 {
		return s
	}
	s.min = ds[0]
	s.max = ds[len(ds)-1]
	s.median = stat.Quantile(0.5, stat.Empirical, ds, nil)
	s.p33 = stat.Quantile(0.33, stat.Empirical, ds, nil)
	s.p66 = stat.Quantile(0.66, stat.Empirical, ds, nil)

	return s
}

// row returns memoized per-node distance statistics, computing them on a
// cache miss.
func (m *Model) row(u int) *rowStats {
	if rs, ok := m.rows.Get(u); ok {
		return rs
	}

	// Distances to all other nodes, ascending.
	others := make([]float64, 0, m.n-1)
	full := make([]float64, m.n)
	for v := 0; v < m.n; v++ {
		full[v] = m.costs[u][v]
		if v != u {
			others = append(others, m.costs[u][v])
		}
	}
	sort.Float64s(others)
	sort.Float64s(full)

	rs := &rowStats{
		sorted: others,
		median: stat.Quantile(0.5, stat.Empirical, full, nil),
	}
	m.rows.Add(u, rs)

	return rs
}

// reason builds the short human-readable justification attached to a
// decision.
func (m *Model) reason(conf, d float64, avail *availStats) string {
	var tags []string

	switch {
	case m.graph == Circle && conf > 0.85:
		tags = append(tags, "adjacent in circle")
	case m.graph == Grid && conf > 0.85:
		tags = append(tags, "orthogonal move in grid")
	case m.graph == Clustered && conf > 0.80:
		tags = append(tags, "same cluster")
	case m.graph == Diagonal && conf > 0.90:
		tags = append(tags, "continues line")
	}

	if len(avail.sorted) > 0 {
		if d <= avail.min+confEps {
			tags = append(tags, "nearest available")
		} else if d < avail.median {
			tags = append(tags, "close distance")
		}
	}

	if len(tags) == 0 {
		return m.graph.String() + " graph"
	}

	out := tags[0]
	for _, t := range tags[1:] {
		out += ", " + t
	}
	return out
}

// clip01 clamps x into [0,1].
func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
