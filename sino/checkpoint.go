// Package sino - the checkpoint stack and backtrack bookkeeping.
//
// Every provisionally committed (SINO) move pushes a checkpoint: a full
// snapshot of the pre-move tour and unvisited set plus the ordered list of
// untried alternatives. Backtracking scans from the top of the stack for the
// first checkpoint with an alternative left, restores its snapshot, and
// hands the alternative back to the explorer. Exhausted checkpoints are
// popped permanently during the scan.
//
// Capacity policy: the stack never exceeds its capacity; the oldest (bottom)
// checkpoint is evicted on overflow. Parent links are advisory - they feed
// statistics and trace logs only, never restores, so a live checkpoint whose
// evicted parent no longer resolves simply behaves as a root. Restores
// depend solely on the checkpoint's own snapshots, which eviction of an
// ancestor cannot invalidate.
package sino

// Checkpoint is one resumable decision point on the stack.
type Checkpoint struct {
	// ID is unique within one search (monotonic counter, survives eviction).
	ID int
	// Decision is the SINO move that was committed when this checkpoint was
	// created.
	Decision Decision
	// Parent is the ID of the checkpoint that was top-of-stack at creation,
	// or noCheckpoint for a root. Advisory only.
	Parent int
	// Depth is the exploration depth at creation time.
	Depth int
	// Visits counts how many backtrack scans have touched this checkpoint.
	Visits int
	// Exhausted is set once every alternative has been consumed.
	Exhausted bool

	tour         []int
	unvisited    *NodeSet
	alternatives []Decision
}

// nextAlternative pops the first untried alternative, FIFO.
func (c *Checkpoint) nextAlternative() (Decision, bool) {
	if len(c.alternatives) == 0 {
		return Decision{}, false
	}
	d := c.alternatives[0]
	c.alternatives = c.alternatives[1:]
	return d, true
}

// Restore is the state handed back by a successful backtrack.
type Restore struct {
	// Tour and Unvisited are independent copies of the checkpoint snapshot;
	// the checkpoint may be restored again later.
	Tour      []int
	Unvisited *NodeSet
	// Next is the alternative decision to commit after restoring.
	Next Decision
	// Checkpoint is the ID of the checkpoint that served the restore.
	Checkpoint int
}

// Stack stores checkpoints in LIFO discipline with bounded capacity.
// Not safe for concurrent use; one search owns one stack.
type Stack struct {
	items    []*Checkpoint
	capacity int
	depth    int
	nextID   int
	evicted  int
}

// NewStack returns an empty stack holding at most capacity checkpoints.
// Non-positive capacities are clamped to 1.
func NewStack(capacity int) *Stack {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack{capacity: capacity}
}

// Push appends a checkpoint snapshotting the pre-move state and returns its
// ID. tour and unvisited are copied; alternatives are owned by the stack
// afterwards. When the stack is full the oldest entry is evicted first.
//
// Complexity: O(n) for the snapshots.
func (s *Stack) Push(dec Decision, tour []int, unvisited *NodeSet, alternatives []Decision, parent int) int {
	if len(s.items) >= s.capacity {
		// Evict the bottom entry. Its descendants keep working: parent links
		// are advisory and restores never chase them.
		copy(s.items, s.items[1:])
		s.items = s.items[:len(s.items)-1]
		s.evicted++
	}

	snapshot := make([]int, len(tour))
	copy(snapshot, tour)

	cp := &Checkpoint{
		ID:           s.nextID,
		Decision:     dec,
		Parent:       parent,
		Depth:        s.depth,
		tour:         snapshot,
		unvisited:    unvisited.Clone(),
		alternatives: alternatives,
	}
	s.nextID++
	s.items = append(s.items, cp)
	s.depth++

	return cp.ID
}

// Backtrack scans from the top for the first checkpoint with an untried
// alternative, restores its snapshot, and returns the alternative to
// execute. Checkpoints exhausted along the way are popped permanently.
// Returns ok=false when the stack empties without finding an alternative.
//
// Complexity: O(k·n) for k exhausted checkpoints popped plus one snapshot copy.
func (s *Stack) Backtrack() (Restore, bool) {
	for len(s.items) > 0 {
		cp := s.items[len(s.items)-1]
		cp.Visits++

		if next, ok := cp.nextAlternative(); ok {
			// Hand out copies; this checkpoint may serve further restores.
			tour := make([]int, len(cp.tour))
			copy(tour, cp.tour)

			s.depth = cp.Depth + 1

			return Restore{
				Tour:       tour,
				Unvisited:  cp.unvisited.Clone(),
				Next:       next,
				Checkpoint: cp.ID,
			}, true
		}

		// Exhausted: drop it and keep scanning.
		cp.Exhausted = true
		s.items = s.items[:len(s.items)-1]
		if s.depth > 0 {
			s.depth--
		}
	}

	return Restore{}, false
}

// Depth returns the current exploration depth.
func (s *Stack) Depth() int { return s.depth }

// Len returns the number of live checkpoints.
func (s *Stack) Len() int { return len(s.items) }

// Evicted returns how many checkpoints were dropped under capacity pressure.
func (s *Stack) Evicted() int { return s.evicted }

// TopID returns the ID of the top checkpoint, if any.
func (s *Stack) TopID() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1].ID, true
}

// Clear drops all checkpoints and resets the depth counter. Checkpoint IDs
// keep growing; they are unique per search, not per stack generation.
func (s *Stack) Clear() {
	s.items = s.items[:0]
	s.depth = 0
}

// BacktrackEvent records one backtrack for post-mortem analysis.
type BacktrackEvent struct {
	// Seq is the 1-based ordinal of the backtrack within the search.
	Seq int
	// FromDepth and ToDepth bracket the restore; DepthChange = From - To.
	FromDepth   int
	ToDepth     int
	DepthChange int
	// Reason is the dead-end reason tag that triggered the backtrack.
	Reason string
	// Checkpoint is the ID of the checkpoint that served the restore.
	Checkpoint int
}

// History accumulates backtrack events during one search.
type History struct {
	events []BacktrackEvent
}

// Record appends one event.
func (h *History) Record(fromDepth, toDepth int, reason string, checkpoint int) {
	h.events = append(h.events, BacktrackEvent{
		Seq:         len(h.events) + 1,
		FromDepth:   fromDepth,
		ToDepth:     toDepth,
		DepthChange: fromDepth - toDepth,
		Reason:      reason,
		Checkpoint:  checkpoint,
	})
}

// Total returns the number of recorded backtracks.
func (h *History) Total() int { return len(h.events) }

// Events returns the recorded events in order.
func (h *History) Events() []BacktrackEvent { return h.events }

// Reasons returns per-reason backtrack counts.
func (h *History) Reasons() map[string]int {
	out := make(map[string]int, len(h.events))
	for _, e := range h.events {
		out[e.Reason]++
	}
	return out
}
