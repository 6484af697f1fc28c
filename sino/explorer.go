// Package sino - the exploration engine.
//
// Explorer ties the confidence model, dead-end detector, and checkpoint
// stack into the main construction loop:
//
//  1. Score every unvisited node from the current one (EvaluateAll).
//  2. If the state is a dead end, backtrack to the nearest checkpoint with
//     an untried alternative; give up (Infeasible) when the backtrack budget
//     is spent or no alternative remains.
//  3. Otherwise commit: the best SI decision directly, or the best SINO
//     decision with a checkpoint capturing the pre-move state and the
//     remaining SINO alternatives. NO-only states are forced dead ends.
//  4. Repeat until every node is on the tour (Done), the budget runs out
//     (Infeasible), or the external deadline fires (TimedOut).
//
// Rationale, in the spirit of the repository's exact-search engines:
//   - A dedicated engine struct instead of closures keeps dependencies
//     explicit and the hot-path state predictable.
//   - Deterministic: id-ordered candidate enumeration, stable confidence
//     sort, lowest-id tie-break, no RNG anywhere.
//   - The deadline is checked once per outer iteration; the loop body is
//     pure CPU arithmetic and never blocks.
//   - User-facing failures are return values (Status), never panics; panics
//     are reserved for internal invariant violations, which indicate a logic
//     defect and must abort loudly.
//
// Complexity: O(n·r²) over the happy path (r = remaining nodes per step);
// each backtrack adds one snapshot restore, O(n).
package sino

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Explorer runs confidence-scored construction over one cost matrix.
// One instance serves one search at a time; run separate instances for
// concurrent multi-start ensembles.
type Explorer struct {
	costs  [][]float64
	coords [][2]float64
	n      int
	graph  GraphType
	cfg    Config

	model  *Model
	detect *Detector
	log    zerolog.Logger
}

// Option customizes an Explorer at construction time.
type Option func(*Explorer)

// WithLogger attaches a structured trace logger. The default is a no-op
// logger; tracing never affects the search outcome.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Explorer) { e.log = l }
}

// WithCoordinates supplies node coordinates, enabling the grid
// orthogonality rule in the confidence model. len(coords) must equal the
// matrix order.
func WithCoordinates(coords [][2]float64) Option {
	return func(e *Explorer) { e.coords = coords }
}

// Stats summarizes one exploration.
type Stats struct {
	// Decisions is the number of forward commits (SI + SINO); alternatives
	// committed through backtracks are counted by Backtracks instead.
	Decisions int
	// SI and SINO count the classification of forward commits.
	SI   int
	SINO int
	// Backtracks is the number of checkpoint restores performed.
	Backtracks int
	// MaxDepth is the deepest checkpoint depth reached.
	MaxDepth int
	// OpenCheckpoints is the stack size at termination.
	OpenCheckpoints int
	// EvictedCheckpoints counts checkpoints dropped under capacity pressure.
	EvictedCheckpoints int
	// Events is the ordered backtrack history.
	Events []BacktrackEvent
}

// Result is the outcome of one exploration.
type Result struct {
	// Tour is the constructed node sequence starting at the requested start
	// node. Complete (a permutation of all n ids) iff Status == Done; the
	// cycle-closing edge is left to the caller.
	Tour []int
	// Status is Done, Infeasible, or TimedOut.
	Status Status
	// Stats is the search telemetry.
	Stats Stats
}

// New builds an Explorer over costs for the given graph type.
//
// Errors: ErrBadConfig plus the validateCosts sentinels;
// ErrDimensionMismatch when supplied coordinates do not match the matrix
// order. The cost matrix is borrowed, not copied; it must stay immutable for
// the Explorer's lifetime.
func New(costs [][]float64, graph GraphType, cfg Config, opts ...Option) (*Explorer, error) {
	e := &Explorer{costs: costs, graph: graph, cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}

	var err error
	if e.model, err = NewModel(costs, e.coords, graph, cfg); err != nil {
		return nil, err
	}
	if e.detect, err = NewDetector(costs, cfg); err != nil {
		return nil, err
	}
	e.n = len(costs)

	return e, nil
}

// Explore constructs a tour from start. deadline is an absolute wall-clock
// limit checked once per loop iteration; the zero time disables it.
//
// Errors: ErrStartOutOfRange. Exhausted budgets and deadlines are not
// errors - they surface as Result.Status so the caller can pick a fallback.
func (e *Explorer) Explore(start int, deadline time.Time) (Result, error) {
	if err := validateStart(e.n, start); err != nil {
		return Result{}, err
	}

	// Per-run trace context. The run id is log-only: it never enters Stats,
	// keeping identical inputs bit-identical in output.
	log := e.log.With().
		Str("run", uuid.NewString()).
		Int("start", start).
		Str("graph", e.graph.String()).
		Logger()

	var (
		tour      = append(make([]int, 0, e.n), start)
		unvisited = NewNodeSet(e.n, start)
		stack     = NewStack(e.cfg.MaxCheckpoints)
		hist      History
		st        Stats
		status    = Building
	)

	for unvisited.Len() > 0 {
		// External cancellation, once per iteration (the body never blocks).
		if !deadline.IsZero() && time.Now().After(deadline) {
			status = TimedOut
			break
		}

		ctx := &TourContext{Tour: tour, Unvisited: unvisited, Total: e.n}
		decisions := e.model.EvaluateAll(ctx.Current(), ctx)

		if dead, reason := e.detect.IsDeadEnd(decisions, tour, unvisited.Len()); dead {
			if !e.backtrack(&tour, &unvisited, stack, &hist, &st, reason, log) {
				status = Infeasible
				break
			}
			continue
		}

		// Partition preserving the descending-confidence order.
		var si, sinos []Decision
		for _, d := range decisions {
			switch d.Type {
			case SI:
				si = append(si, d)
			case SINO:
				sinos = append(sinos, d)
			case NO:
				// Dropped; never committed in this state.
			}
		}

		switch {
		case len(si) > 0:
			// High confidence: commit directly, no checkpoint.
			e.commit(si[0].Node, &tour, unvisited)
			st.SI++

		case len(sinos) > 0:
			// Moderate confidence: commit provisionally, keep the untried
			// SINO alternatives reachable through a checkpoint.
			chosen := sinos[0]
			alternatives := append([]Decision(nil), sinos[1:]...)

			parent := noCheckpoint
			if id, ok := stack.TopID(); ok {
				parent = id
			}
			chosen.Checkpoint = stack.Push(chosen, tour, unvisited, alternatives, parent)

			e.commit(chosen.Node, &tour, unvisited)
			st.SINO++

		default:
			// Only NO decisions survive: a forced dead end the detector's
			// strict threshold let through.
			if !e.backtrack(&tour, &unvisited, stack, &hist, &st, "only_no_decisions", log) {
				status = Infeasible
				break
			}
			continue
		}

		st.Decisions++
		if d := stack.Depth(); d > st.MaxDepth {
			st.MaxDepth = d
		}

		// Corruption guard. The commit invariants make this unreachable; if
		// it ever fires the engine state is undefined and continuing would
		// silently return garbage.
		if len(tour) > 2*e.n {
			panic("sino: internal invariant violated: tour grew past 2n")
		}
	}

	if status == Building {
		if len(tour) == e.n {
			status = Done
		} else {
			status = Infeasible
		}
	}

	st.OpenCheckpoints = stack.Len()
	st.EvictedCheckpoints = stack.Evicted()
	st.Events = hist.Events()

	log.Debug().
		Str("status", status.String()).
		Int("tour_len", len(tour)).
		Int("backtracks", st.Backtracks).
		Int("max_depth", st.MaxDepth).
		Int("open_checkpoints", st.OpenCheckpoints).
		Msg("exploration finished")

	return Result{Tour: tour, Status: status, Stats: st}, nil
}

// commit appends node to the tour and removes it from the unvisited set,
// asserting the structural invariants on the way.
func (e *Explorer) commit(node int, tour *[]int, unvisited *NodeSet) {
	if !unvisited.Remove(node) {
		panic("sino: internal invariant violated: committing a visited node")
	}
	*tour = append(*tour, node)
	if len(*tour)+unvisited.Len() != e.n {
		panic("sino: internal invariant violated: tour/unvisited size mismatch")
	}
}

// backtrack restores the nearest resumable checkpoint and commits its next
// alternative. Reports false when the backtrack budget is spent or no
// checkpoint has alternatives left; the caller terminates as Infeasible.
func (e *Explorer) backtrack(tour *[]int, unvisited **NodeSet, stack *Stack, hist *History, st *Stats, reason string, log zerolog.Logger) bool {
	// Budget check precedes the attempt: a zero budget means the stack is
	// never consulted at all.
	if st.Backtracks >= e.cfg.MaxBacktracks {
		return false
	}

	fromDepth := stack.Depth()
	res, ok := stack.Backtrack()
	if !ok {
		return false
	}

	*tour = res.Tour
	*unvisited = res.Unvisited
	e.commit(res.Next.Node, tour, *unvisited)

	hist.Record(fromDepth, stack.Depth(), reason, res.Checkpoint)
	st.Backtracks++

	log.Debug().
		Int("from_depth", fromDepth).
		Int("to_depth", stack.Depth()).
		Int("checkpoint", res.Checkpoint).
		Str("reason", reason).
		Int("alternative", res.Next.Node).
		Msg("backtracked")

	return true
}

// Explore is the package-level convenience wrapper: build an Explorer with
// default wiring and run a single search.
func Explore(costs [][]float64, graph GraphType, cfg Config, start int, deadline time.Time) (Result, error) {
	e, err := New(costs, graph, cfg)
	if err != nil {
		return Result{}, err
	}
	return e.Explore(start, deadline)
}
