package construct

import "errors"

// Sentinel errors returned by the constructors.
var (
	// ErrBadMatrix reports a nil or non-square cost matrix, fewer than 3
	// nodes, or NaN/Inf/negative entries.
	ErrBadMatrix = errors.New("construct: invalid cost matrix")

	// ErrStartOutOfRange reports a start node outside [0..n-1].
	ErrStartOutOfRange = errors.New("construct: start node out of range")

	// ErrDimensionMismatch reports coordinates not matching the matrix order.
	ErrDimensionMismatch = errors.New("construct: dimension mismatch")
)
