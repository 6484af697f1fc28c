// Package tour provides cost and validation utilities for node tours over a
// dense cost matrix.
//
// A tour here is an open node sequence (no closing edge); CycleCost adds the
// closing edge explicitly. All helpers are side-effect free, deterministic,
// and return sentinel errors only. Costs are rounded to 1e-9 to avoid
// cross-platform floating-point drift.
package tour
