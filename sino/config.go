// Package sino - search configuration.
//
// Config follows the repository's option-struct convention: a plain value
// struct with a DefaultConfig constructor and a strict Validate that returns
// sentinel errors. A Config is created once, validated once, and read-only
// afterwards; concurrent Explorer instances may share one by value.
package sino

import "math"

// weightTol is the tolerance for the factor-weight sum check.
// Weights are human-edited round numbers; 1e-3 absorbs decimal noise without
// letting a genuinely wrong sum through.
const weightTol = 1e-3

// Config holds the thresholds, factor weights, and budgets of one search.
type Config struct {
	// SIThreshold is the minimum confidence for a SI classification.
	SIThreshold float64
	// NOThreshold is the maximum confidence for a NO classification.
	// Must be strictly below SIThreshold; the band between the two is SINO.
	NOThreshold float64

	// GraphTypeWeight, DistanceWeight, TourContextWeight and
	// LocalStructureWeight combine the four confidence factors.
	// They must sum to 1.0 within weightTol.
	GraphTypeWeight      float64
	DistanceWeight       float64
	TourContextWeight    float64
	LocalStructureWeight float64

	// MaxBacktracks bounds the number of checkpoint restores in one search.
	MaxBacktracks int
	// MaxDepth bounds the nominal exploration depth. The depth counter is
	// tracked per checkpoint and reported in Stats; pushes beyond MaxDepth
	// are not refused (matching the reference behavior), the limit exists to
	// keep depth accounting bounded and meaningful.
	MaxDepth int

	// DeadEndConfidence: a state where every candidate scores strictly below
	// this value is a dead end.
	DeadEndConfidence float64
	// DeadEndCostRatio: a partial path costing more than the lower-bound
	// estimate times this ratio is a dead end.
	DeadEndCostRatio float64

	// MaxCheckpoints caps the checkpoint stack; the oldest entry is evicted
	// on overflow.
	MaxCheckpoints int
}

// DefaultConfig returns the reference parameterization.
func DefaultConfig() Config {
	return Config{
		SIThreshold:          0.80,
		NOThreshold:          0.20,
		GraphTypeWeight:      0.40,
		DistanceWeight:       0.30,
		TourContextWeight:    0.20,
		LocalStructureWeight: 0.10,
		MaxBacktracks:        5,
		MaxDepth:             100,
		DeadEndConfidence:    0.20,
		DeadEndCostRatio:     2.0,
		MaxCheckpoints:       50,
	}
}

// Validate checks all Config invariants and returns ErrBadConfig on the
// first violation. It never mutates the receiver.
//
// Invariants:
//   - 0 <= NOThreshold < SIThreshold <= 1.
//   - The four factor weights are non-negative and sum to 1.0 (±weightTol).
//   - MaxBacktracks >= 0; MaxDepth, MaxCheckpoints > 0.
//   - DeadEndConfidence in [0,1]; DeadEndCostRatio >= 1.
//
// Complexity: O(1).
func (c Config) Validate() error {
	// Stage 1: threshold ordering.
	if c.NOThreshold < 0 || c.SIThreshold > 1 || c.NOThreshold >= c.SIThreshold {
		return ErrBadConfig
	}

	// Stage 2: factor weights.
	if c.GraphTypeWeight < 0 || c.DistanceWeight < 0 ||
		c.TourContextWeight < 0 || c.LocalStructureWeight < 0 {
		return ErrBadConfig
	}
	sum := c.GraphTypeWeight + c.DistanceWeight + c.TourContextWeight + c.LocalStructureWeight
	if math.Abs(sum-1.0) > weightTol {
		return ErrBadConfig
	}

	// Stage 3: budgets. MaxBacktracks==0 is legal (pure greedy, scenario
	// tests rely on it); the structural limits must be positive.
	if c.MaxBacktracks < 0 || c.MaxDepth <= 0 || c.MaxCheckpoints <= 0 {
		return ErrBadConfig
	}

	// Stage 4: dead-end knobs.
	if c.DeadEndConfidence < 0 || c.DeadEndConfidence > 1 {
		return ErrBadConfig
	}
	if c.DeadEndCostRatio < 1 {
		return ErrBadConfig
	}

	return nil
}

// Classify maps a confidence value to its decision type using the receiver's
// thresholds: >= SIThreshold is SI, <= NOThreshold is NO, the band between
// is SINO.
//
// Complexity: O(1).
func (c Config) Classify(confidence float64) DecisionType {
	switch {
	case confidence >= c.SIThreshold:
		return SI
	case confidence <= c.NOThreshold:
		return NO
	default:
		return SINO
	}
}
