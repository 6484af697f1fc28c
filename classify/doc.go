// Package classify assigns a structural sino.GraphType to an instance from
// its node coordinates and pairwise cost matrix.
//
// The classification is a cheap deterministic heuristic, not a guarantee:
// it only selects which confidence rules the search applies, and a wrong
// class degrades scoring quality rather than correctness. Checks run from
// the most specific layout to the least:
//
//	circle    — distances from the centroid vary little (CV below 0.15);
//	diagonal  — the point cloud is nearly collinear;
//	grid      — pairwise distances are near-uniform (CV below 0.3);
//	clustered — the pairwise distance distribution is strongly bimodal;
//	random    — everything else (or the caller-supplied hint).
//
// Without coordinates only the cost-uniformity test is available.
package classify
