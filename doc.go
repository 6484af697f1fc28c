// Package pimstsolver is a confidence-scored tour construction toolkit:
// a checkpointed backtracking search over pairwise cost matrices, plus the
// deterministic collaborators an orchestrator needs around it.
//
// 🚀 What is in the box?
//
//	sino/        — the core: four-factor confidence scoring, SI/SINO/NO
//	               decision classification, checkpoint stack, dead-end
//	               detection, and the exploration state machine
//	classify/    — structural graph-type heuristics (circle, grid,
//	               clustered, diagonal, random) selecting the scoring rules
//	construct/   — deterministic fallback constructors: nearest-neighbor
//	               and gravity-guided greedy
//	localsearch/ — first-improvement 2-opt polish, asymmetry-correct
//	tour/        — cost evaluation and permutation validation utilities
//
// ✨ Design commitments
//
//   - Deterministic - id-ordered enumeration, stable sorts, documented
//     tie-breaks, no RNG in any search path
//   - Honest failure - exhausted budgets and deadlines are Status values,
//     never errors or panics; the caller picks the fallback
//   - Sequential core - one search, one goroutine; scale out by running
//     independent Explorer instances with a shared read-only Config
//
// Start with sino.Explore for a one-shot search, or build a sino.Explorer
// and drive multi-start ensembles yourself.
package pimstsolver
