// Package construct provides deterministic constructive tour heuristics.
//
// These are the fallbacks an orchestrator reaches for when the checkpointed
// search in package sino reports an infeasible or timed-out run: they always
// produce a complete permutation, in near-quadratic time, with no randomness.
//
//   - NearestNeighbor — classic greedy, lowest-index tie-break.
//   - GravityGuided   — greedy over gravity-weighted distances: isolated
//     nodes get higher mass and attract the construction early, which keeps
//     them from being stranded for an expensive final pickup.
package construct
