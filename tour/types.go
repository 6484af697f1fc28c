package tour

import "errors"

// Sentinel errors shared by all helpers in this package.
var (
	// ErrNonSquare reports a cost matrix whose rows differ in length from
	// the number of rows.
	ErrNonSquare = errors.New("tour: cost matrix is not square")

	// ErrDimensionMismatch reports an ill-shaped input: nil matrix, empty or
	// too-short tour, out-of-range node ids, NaN entries, or a sequence that
	// is not a permutation where one is required.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")

	// ErrNegativeWeight reports a negative edge weight along the tour.
	ErrNegativeWeight = errors.New("tour: negative edge weight")
)
