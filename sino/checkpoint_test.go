package sino_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoscra/pimst-solver/sino"
)

// dec builds a minimal decision for stack plumbing tests.
func dec(node int, conf float64) sino.Decision {
	return sino.Decision{Node: node, Confidence: conf, Type: sino.SINO}
}

func TestStack_PushBacktrack_FIFOAlternatives(t *testing.T) {
	s := sino.NewStack(8)
	set := sino.NewNodeSet(4, 0)

	id := s.Push(dec(1, 0.7), []int{0}, set, []sino.Decision{dec(2, 0.5), dec(3, 0.3)}, -1)
	require.Equal(t, 0, id)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, s.Depth())

	// First restore hands out the first untried alternative.
	res, ok := s.Backtrack()
	require.True(t, ok)
	assert.Equal(t, 2, res.Next.Node)
	assert.Equal(t, id, res.Checkpoint)
	assert.Equal(t, []int{0}, res.Tour)
	assert.Equal(t, 3, res.Unvisited.Len())

	// Mutating the restored state must not corrupt later restores.
	res.Tour[0] = 99
	res.Unvisited.Remove(3)

	res, ok = s.Backtrack()
	require.True(t, ok)
	assert.Equal(t, 3, res.Next.Node)
	assert.Equal(t, []int{0}, res.Tour)
	assert.Equal(t, 3, res.Unvisited.Len())

	// Exhausted: the checkpoint is popped during the scan.
	_, ok = s.Backtrack()
	require.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStack_SnapshotIsolation(t *testing.T) {
	s := sino.NewStack(4)
	set := sino.NewNodeSet(4, 0)
	pushed := []int{0, 1}

	s.Push(dec(2, 0.6), pushed, set, []sino.Decision{dec(3, 0.4)}, -1)

	// The caller keeps mutating its own state after the push.
	pushed[1] = 42
	set.Remove(2)

	res, ok := s.Backtrack()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.Tour)
	assert.True(t, res.Unvisited.Has(2))
}

func TestStack_CapacityEvictsOldest(t *testing.T) {
	s := sino.NewStack(2)
	set := sino.NewNodeSet(5, 0)
	alts := func(n int) []sino.Decision { return []sino.Decision{dec(n, 0.5)} }

	id0 := s.Push(dec(1, 0.7), []int{0}, set, alts(10), -1)
	id1 := s.Push(dec(2, 0.7), []int{0, 1}, set, alts(20), id0)
	id2 := s.Push(dec(3, 0.7), []int{0, 1, 2}, set, alts(30), id1)

	require.Equal(t, 2, s.Len())
	require.Equal(t, 1, s.Evicted())
	require.Equal(t, []int{0, 1, 2}, []int{id0, id1, id2})

	// LIFO restore order: newest first; the evicted bottom never serves.
	res, ok := s.Backtrack()
	require.True(t, ok)
	assert.Equal(t, id2, res.Checkpoint)

	// id2 is spent; the same scan pops it and serves id1.
	res, ok = s.Backtrack()
	require.True(t, ok)
	assert.Equal(t, id1, res.Checkpoint)

	// id1 spent too, and the evicted id0 is gone for good.
	_, ok = s.Backtrack()
	require.False(t, ok)
}

func TestStack_DepthFollowsRestores(t *testing.T) {
	s := sino.NewStack(8)
	set := sino.NewNodeSet(4, 0)

	s.Push(dec(1, 0.7), []int{0}, set, []sino.Decision{dec(2, 0.5)}, -1) // depth 0→1
	s.Push(dec(2, 0.7), []int{0, 1}, set, nil, 0)                       // depth 1→2
	require.Equal(t, 2, s.Depth())

	// Top has no alternatives: it is popped, the next one serves; depth
	// resumes just past the serving checkpoint.
	res, ok := s.Backtrack()
	require.True(t, ok)
	assert.Equal(t, 0, res.Checkpoint)
	assert.Equal(t, 1, s.Depth())
}

func TestStack_ClampAndClear(t *testing.T) {
	s := sino.NewStack(0) // clamped to capacity 1
	set := sino.NewNodeSet(3, 0)

	s.Push(dec(1, 0.6), []int{0}, set, nil, -1)
	s.Push(dec(2, 0.6), []int{0}, set, nil, -1)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, s.Evicted())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Depth())

	// IDs stay monotonic across Clear.
	id := s.Push(dec(3, 0.6), []int{0}, set, nil, -1)
	assert.Equal(t, 2, id)
}

func TestStack_TopID(t *testing.T) {
	s := sino.NewStack(4)
	_, ok := s.TopID()
	require.False(t, ok)

	set := sino.NewNodeSet(3, 0)
	id := s.Push(dec(1, 0.6), []int{0}, set, nil, -1)
	top, ok := s.TopID()
	require.True(t, ok)
	assert.Equal(t, id, top)
}

func TestHistory_RecordAndReasons(t *testing.T) {
	var h sino.History
	require.Zero(t, h.Total())

	h.Record(3, 1, "excessive_cost (ratio=2.10)", 4)
	h.Record(1, 0, "all_low_confidence (max=0.12)", 2)
	h.Record(2, 1, "excessive_cost (ratio=2.40)", 5)

	require.Equal(t, 3, h.Total())
	events := h.Events()
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, 2, events[0].DepthChange)
	assert.Equal(t, 3, events[2].Seq)

	reasons := h.Reasons()
	assert.Equal(t, 1, reasons["all_low_confidence (max=0.12)"])
	assert.Equal(t, 1, reasons["excessive_cost (ratio=2.10)"])
}

func TestNodeSet_Basics(t *testing.T) {
	set := sino.NewNodeSet(5, 2)
	require.Equal(t, 4, set.Len())
	assert.False(t, set.Has(2))
	assert.True(t, set.Has(0))
	assert.False(t, set.Has(-1))
	assert.False(t, set.Has(5))

	require.True(t, set.Remove(4))
	require.False(t, set.Remove(4)) // already gone
	require.Equal(t, 3, set.Len())

	clone := set.Clone()
	clone.Remove(0)
	assert.True(t, set.Has(0))
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, 2, clone.Len())
}
