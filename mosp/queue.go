package mosp

import "container/heap"

// pqEntry is one pending node/label pair tracked by the priority queue.
// index is maintained by container/heap for O(log n) decrease-key.
type pqEntry struct {
	node  uint32
	label Label
	index int
}

// minHeap is a container/heap.Interface ordering entries by Label.Less,
// so Pop always returns the currently-best pending label.
type minHeap []*pqEntry

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].label.Less(h[j].label) }
func (h minHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *minHeap) Push(x any) {
	e := x.(*pqEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// pendingQueue is a node-keyed priority queue supporting push_increase
// (keep-smaller) semantics: pushing a label for a node already pending
// replaces it only if the new label is smaller, leaving the existing
// entry untouched otherwise.
type pendingQueue struct {
	h       minHeap
	byNode  map[uint32]*pqEntry
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{byNode: make(map[uint32]*pqEntry)}
}

// pushOrImprove inserts (node, label) if node is not currently pending,
// or replaces node's pending label with label if label is smaller.
// Otherwise it is a no-op.
func (q *pendingQueue) pushOrImprove(node uint32, label Label) {
	if e, ok := q.byNode[node]; ok {
		if label.Less(e.label) {
			e.label = label
			heap.Fix(&q.h, e.index)
		}
		return
	}
	e := &pqEntry{node: node, label: label}
	heap.Push(&q.h, e)
	q.byNode[node] = e
}

// pop removes and returns the pending entry with the smallest label.
func (q *pendingQueue) pop() (uint32, Label, bool) {
	if q.h.Len() == 0 {
		return 0, Label{}, false
	}
	e := heap.Pop(&q.h).(*pqEntry)
	delete(q.byNode, e.node)
	return e.node, e.label, true
}

func (q *pendingQueue) empty() bool {
	return q.h.Len() == 0
}
