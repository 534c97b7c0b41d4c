package physics

import "container/heap"

// ClockEvent is a scheduled callback. An event popped from the clock's
// heap with Valid == false is silently skipped (spec.md §3, §4.1).
//
// Grounded on the reference engine's Arbiter/ContactBuffer pooling
// idiom (bbtree.go's pooledPairs/pooledNodes free-lists) generalized
// from object reuse to lazy deletion: invalidation is cheaper than
// removing an arbitrary element from a binary heap, and per spec.md §9,
// invalidations far outnumber survivors in practice.
type ClockEvent struct {
	Time     float64
	Callback func(clock *Clock)
	Valid    bool

	seq   uint64
	index int
}

// Cancel marks the event invalid; Clock.RunTo and Clock.Advance skip it
// silently when popped instead of executing its callback.
func (e *ClockEvent) Cancel() {
	if e != nil {
		e.Valid = false
	}
}

// eventHeap is a min-heap ordered by (Time, seq): the sequence counter
// breaks ties deterministically by insertion order, per spec.md §4.1's
// ordering guarantee.
type eventHeap []*ClockEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *eventHeap) Push(x interface{}) {
	e := x.(*ClockEvent)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

var _ heap.Interface = (*eventHeap)(nil)
