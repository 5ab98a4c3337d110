// Package minheap provides the binary min-heap priority queue of candidate
// edges that drives Prim's algorithm.
package minheap

import "container/heap"

// Item is one candidate edge on the frontier: From is already inside the
// growing tree, To is the vertex the edge would add, Weight is its cost.
type Item struct {
	// From is the tree-side endpoint.
	From int

	// To is the outside endpoint.
	To int

	// Weight is the cost of the connecting edge; the heap orders by it.
	Weight int64
}

// Heap is a binary min-heap of Items ordered by ascending Weight.
// Ties are broken by structural position only: equal weights come out in an
// arbitrary but deterministic order for a given push sequence.
// The zero value is an empty heap ready for use.
type Heap struct {
	items itemQueue
}

// New returns an empty Heap.
func New() *Heap { return &Heap{} }

// Push inserts it, restoring heap order by bubbling the new Item upward
// while its Weight is smaller than its parent's.
// Complexity: O(log n).
func (h *Heap) Push(it Item) { heap.Push(&h.items, it) }

// Pop removes and returns the minimum-weight Item.
// The second return value is false when the heap is empty; no sentinel Item
// value is ever used to signal emptiness.
// Complexity: O(log n).
func (h *Heap) Pop() (Item, bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}

	return heap.Pop(&h.items).(Item), true
}

// Len reports the current element count. Complexity: O(1).
func (h *Heap) Len() int { return len(h.items) }

// itemQueue implements heap.Interface over a slice of Items, ordered by
// Weight. The sift-up and sift-down moves (including the prefer-the-smaller-
// child rule on the way down) come from container/heap.
type itemQueue []Item

// Len returns the number of queued Items. Complexity: O(1).
func (q itemQueue) Len() int { return len(q) }

// Less orders by ascending Weight. Complexity: O(1).
func (q itemQueue) Less(i, j int) bool { return q[i].Weight < q[j].Weight }

// Swap exchanges elements i and j. Complexity: O(1).
func (q itemQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends a new Item; called by heap.Push.
func (q *itemQueue) Push(x interface{}) { *q = append(*q, x.(Item)) }

// Pop removes and returns the last element after heap adjustments; called
// by heap.Pop.
func (q *itemQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
