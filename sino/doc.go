// Package sino implements confidence-scored tour construction with
// checkpointed backtracking over a pairwise cost matrix.
//
// The core is a state-machine search that builds a Hamiltonian path node by
// node. Every candidate move is scored by a four-factor confidence model and
// classified against two thresholds:
//
//   - SI   — high confidence: commit the move immediately, no checkpoint.
//   - SINO — moderate confidence: commit provisionally and push a checkpoint
//     recording the untried alternatives, so the search can return here.
//   - NO   — low confidence: never chosen in the current state.
//
// A dead-end detector watches the score distribution and the partial-path
// cost against an MST-based lower bound; when the current state is judged
// unrecoverable the explorer pops the checkpoint stack, restores an earlier
// partial tour, and resumes with a previously unexplored alternative. The
// number of backtracks is bounded, so the search may legitimately finish
// with a partial tour (Infeasible) and leave recovery to the caller.
//
// Components:
//
//   - Config       — immutable thresholds/weights/limits, validated up front.
//   - Model        — the confidence scorer (Score / EvaluateAll).
//   - Detector     — dead-end detection with a Prim MST lower bound.
//   - Stack        — resumable checkpoints and the backtracking discipline.
//   - Explorer     — the construction loop producing a tour plus Stats.
//
// The search is deterministic: candidate enumeration is id-ordered, the
// confidence sort is stable, and ties resolve to the lowest node id. One
// Explorer instance serves one search on one goroutine; run independent
// Explorer instances for concurrent multi-start ensembles (Config is
// read-only and may be shared).
//
// Use this package when a plain constructive heuristic (see construct)
// wanders into expensive corners on structured instances and a bounded
// amount of look-back is worth the extra bookkeeping.
package sino
