package astar

import "container/heap"

// frontier is the open set: a binary min-heap of arena indices with position
// tracking, so a node whose F decreased can be re-sorted in O(log n).
//
// Order: ascending F, then ascending G, then ascending insertion sequence.
// A re-keyed entry takes a fresh sequence number, exactly as if it had been
// removed and pushed again.
type frontier struct {
	nodes []Node // arena shared with the engine; read-only here
	items []int  // heap of arena indices
	pos   []int  // pos[idx] = position in items, or -1 when absent
	seq   []uint64
	next  uint64
}

func newFrontier(nodes []Node) *frontier {
	f := &frontier{
		nodes: nodes,
		items: make([]int, 0, len(nodes)),
		pos:   make([]int, len(nodes)),
		seq:   make([]uint64, len(nodes)),
	}
	f.reset()

	return f
}

// reset empties the frontier without reallocating.
func (f *frontier) reset() {
	f.items = f.items[:0]
	for i := range f.pos {
		f.pos[i] = -1
		f.seq[i] = 0
	}
	f.next = 0
}

// contains reports whether idx is currently queued.
func (f *frontier) contains(idx int) bool { return f.pos[idx] >= 0 }

// push queues idx. idx must not already be queued.
func (f *frontier) push(idx int) {
	if f.contains(idx) {
		panic("astar: node pushed twice onto the frontier")
	}
	f.seq[idx] = f.stamp()
	heap.Push((*frontierHeap)(f), idx)
}

// pop removes and returns the minimum index.
func (f *frontier) pop() int {
	return heap.Pop((*frontierHeap)(f)).(int)
}

// fix restores heap order after the node at idx got a cheaper F.
func (f *frontier) fix(idx int) {
	p := f.pos[idx]
	if p < 0 {
		panic("astar: fix on a node outside the frontier")
	}
	f.seq[idx] = f.stamp()
	heap.Fix((*frontierHeap)(f), p)
}

// remove drops idx from the frontier if present.
// The engine re-keys with fix instead; remove is the general delete.
func (f *frontier) remove(idx int) {
	if p := f.pos[idx]; p >= 0 {
		heap.Remove((*frontierHeap)(f), p)
	}
}

func (f *frontier) len() int { return len(f.items) }

func (f *frontier) stamp() uint64 {
	s := f.next
	f.next++
	return s
}

// frontierHeap adapts frontier to heap.Interface.
type frontierHeap frontier

// Len returns the number of queued nodes.
func (h *frontierHeap) Len() int { return len(h.items) }

// Less orders by F, then G, then insertion sequence.
func (h *frontierHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	na, nb := &h.nodes[a], &h.nodes[b]
	if na.F != nb.F {
		return na.F < nb.F
	}
	if na.G != nb.G {
		return na.G < nb.G
	}
	return h.seq[a] < h.seq[b]
}

// Swap swaps two entries and keeps pos in sync.
func (h *frontierHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// Push appends x (an arena index). Called by heap.Push.
func (h *frontierHeap) Push(x interface{}) {
	idx := x.(int)
	h.pos[idx] = len(h.items)
	h.items = append(h.items, idx)
}

// Pop removes the last entry. Called by heap.Pop.
func (h *frontierHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	idx := old[n-1]
	h.items = old[:n-1]
	h.pos[idx] = -1

	return idx
}
