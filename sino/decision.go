// Package sino - decisions, tour context, and the unvisited-node set.
//
// A Decision is the unit the explorer consumes: one candidate move with its
// confidence, classification, human-readable reason, and edge cost. It is
// immutable once produced.
//
// The unvisited set is a fixed-size boolean array rather than a map: the node
// universe is dense [0..n-1], membership tests are branch-cheap, snapshots
// are a single copy, and id-ordered iteration gives the deterministic
// candidate enumeration the tie-break rule depends on.
package sino

// noCheckpoint marks a Decision not associated with any checkpoint.
const noCheckpoint = -1

// Decision describes one candidate move out of the current node.
type Decision struct {
	// Node is the target node id.
	Node int
	// Confidence is the combined four-factor score in [0,1].
	Confidence float64
	// Type is the SI/SINO/NO classification of Confidence.
	Type DecisionType
	// Reason is a short human-readable justification for the score.
	Reason string
	// Cost is the edge cost from the current node to Node.
	Cost float64
	// Checkpoint is the id of the checkpoint created when this decision was
	// committed provisionally, or noCheckpoint (-1).
	Checkpoint int
}

// bestDecision returns the index of the highest-confidence decision in ds,
// or -1 when ds is empty. Equal confidences resolve to the earliest entry,
// which is the lowest node id under the stable ordering of EvaluateAll.
//
// Complexity: O(len(ds)).
func bestDecision(ds []Decision) int {
	best := -1
	for i := range ds {
		if best == -1 || ds[i].Confidence > ds[best].Confidence {
			best = i
		}
	}
	return best
}

// TourContext is the ephemeral per-iteration view of the search state handed
// to the confidence model. It borrows the explorer's tour and unvisited set;
// neither is mutated through it.
type TourContext struct {
	// Tour is the current partial tour, ordered, without duplicates.
	Tour []int
	// Unvisited is the set of node ids not yet on the tour.
	Unvisited *NodeSet
	// Total is the node count n of the instance.
	Total int
}

// Current returns the tour's last element (the node moves depart from).
func (c *TourContext) Current() int {
	return c.Tour[len(c.Tour)-1]
}

// Progress returns |tour|/n in [0,1].
func (c *TourContext) Progress() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(len(c.Tour)) / float64(c.Total)
}

// Remaining returns the number of unvisited nodes.
func (c *TourContext) Remaining() int {
	return c.Unvisited.Len()
}

// NodeSet is a dense set over the node universe [0..n-1].
type NodeSet struct {
	member []bool
	count  int
}

// NewNodeSet returns the full set {0..n-1} minus the start node.
func NewNodeSet(n, start int) *NodeSet {
	s := &NodeSet{member: make([]bool, n), count: n - 1}
	for i := 0; i < n; i++ {
		s.member[i] = i != start
	}
	return s
}

// Has reports membership of v.
func (s *NodeSet) Has(v int) bool {
	return v >= 0 && v < len(s.member) && s.member[v]
}

// Remove deletes v and reports whether it was present.
func (s *NodeSet) Remove(v int) bool {
	if !s.Has(v) {
		return false
	}
	s.member[v] = false
	s.count--
	return true
}

// Len returns the number of members.
func (s *NodeSet) Len() int { return s.count }

// Clone returns an independent copy; used for checkpoint snapshots.
func (s *NodeSet) Clone() *NodeSet {
	m := make([]bool, len(s.member))
	copy(m, s.member)
	return &NodeSet{member: m, count: s.count}
}

// each calls fn for every member in ascending id order. Iteration order is
// part of the determinism contract: candidates are always enumerated id-first.
func (s *NodeSet) each(fn func(v int)) {
	for v := 0; v < len(s.member); v++ {
		if s.member[v] {
			fn(v)
		}
	}
}
