package astar

// openItem is an open-set entry. Its priority f = g + h is fixed at push
// time because discovered nodes are never relaxed.
type openItem struct {
	id NodeID
	f  float64
}

// openSet is a min-heap of *openItem ordered by f ascending.
// Each node is pushed at most once per search, so no stale entries exist.
type openSet []*openItem

// Len returns the number of open nodes.
func (q openSet) Len() int { return len(q) }

// Less orders by f; ties are left to the heap.
func (q openSet) Less(i, j int) bool { return q[i].f < q[j].f }

// Swap swaps two elements in the heap.
func (q openSet) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be *openItem.
func (q *openSet) Push(x interface{}) { *q = append(*q, x.(*openItem)) }

// Pop is called by heap.Pop and returns the last element.
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
