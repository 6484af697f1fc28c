// Package localsearch provides deterministic local-search improvement for
// complete tours produced by the constructors or the checkpointed search.
//
// Only first-improvement 2-opt is implemented: it is the cheapest pass that
// reliably removes crossings, and it is asymmetry-correct - candidate moves
// are evaluated by recomputing every arc the reversal touches, so ATSP
// instances improve under their true directed costs rather than a symmetric
// approximation.
package localsearch
