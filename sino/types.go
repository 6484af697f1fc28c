// Package sino - enums and sentinel errors shared by the whole core.
//
// Design principles (mirrored across the repository):
//   - Strict sentinels: callers compare with errors.Is; no fmt.Errorf where a
//     sentinel suffices.
//   - Closed enums with exhaustive switch dispatch; adding a graph type is a
//     compile-time-checked change.
//   - No logging and no panics on user input; panics are reserved for
//     internal invariant violations (see explorer.go).
package sino

import "errors"

// Sentinel errors returned by constructors and validators.
var (
	// ErrBadConfig reports a Config violating its invariants
	// (NOThreshold >= SIThreshold, weights not summing to 1, non-positive limits).
	ErrBadConfig = errors.New("sino: invalid configuration")

	// ErrNonSquare reports a cost matrix whose rows differ in length from
	// the number of rows.
	ErrNonSquare = errors.New("sino: cost matrix is not square")

	// ErrTooFewNodes reports an instance with fewer than 3 nodes; a tour
	// needs at least a triangle.
	ErrTooFewNodes = errors.New("sino: fewer than 3 nodes")

	// ErrNegativeWeight reports a negative entry in the cost matrix.
	ErrNegativeWeight = errors.New("sino: negative edge weight")

	// ErrNonZeroDiagonal reports cost[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("sino: non-zero diagonal entry")

	// ErrDimensionMismatch reports an ill-shaped input (NaN/Inf entries,
	// nil matrix, coordinate count not matching the matrix order).
	ErrDimensionMismatch = errors.New("sino: dimension mismatch")

	// ErrStartOutOfRange reports a start node outside [0..n-1].
	ErrStartOutOfRange = errors.New("sino: start node out of range")
)

// GraphType classifies the structural layout of the node set. The classifier
// in package classify produces one; the confidence model selects its
// per-type scoring rules from it.
type GraphType uint8

const (
	// Random is the safe default: scoring falls back to pure distance ranks.
	Random GraphType = iota
	// Circle - nodes on a ring; angular neighbors score near-certain.
	Circle
	// Grid - lattice layout; orthogonal short moves are preferred.
	Grid
	// Clustered - dense groups; intra-cluster moves score high.
	Clustered
	// Diagonal - nearly collinear nodes; line-following scores high.
	Diagonal
)

// String returns the lower-case tag used in reasons and trace logs.
func (g GraphType) String() string {
	switch g {
	case Circle:
		return "circle"
	case Grid:
		return "grid"
	case Clustered:
		return "clustered"
	case Diagonal:
		return "diagonal"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// DecisionType is the three-way classification of a move's confidence.
type DecisionType uint8

const (
	// NO - confidence at or below Config.NOThreshold; never committed.
	NO DecisionType = iota
	// SINO - moderate confidence; committed provisionally with a checkpoint.
	SINO
	// SI - confidence at or above Config.SIThreshold; committed directly.
	SI
)

// String returns the lower-case tag used in reasons and trace logs.
func (d DecisionType) String() string {
	switch d {
	case SI:
		return "si"
	case SINO:
		return "sino"
	case NO:
		return "no"
	default:
		return "unknown"
	}
}

// Status is the terminal state of one exploration.
type Status uint8

const (
	// Building is the transient in-loop state; never returned.
	Building Status = iota
	// Done - the tour is a complete permutation of all nodes.
	Done
	// Infeasible - the backtrack budget ran out or no alternatives remained;
	// the returned tour is partial.
	Infeasible
	// TimedOut - the external deadline fired before completion; distinct from
	// Infeasible so orchestrators can retry with a larger budget instead of
	// falling back to another solver.
	TimedOut
)

// String returns a printable tag for the status.
func (s Status) String() string {
	switch s {
	case Building:
		return "building"
	case Done:
		return "done"
	case Infeasible:
		return "infeasible"
	case TimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}
