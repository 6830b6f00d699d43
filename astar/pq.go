package astar

// nodeItem is one frontier entry: a vertex and its f-score at push time.
type nodeItem struct {
	id int   // vertex ID
	f  int64 // g(id) + h(id) when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending.
// A vertex may appear several times; only the entry popped first while the
// vertex is still open is used, the rest are discarded as stale.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// top returns the minimum entry without removing it. pq must be non-empty.
func (pq nodePQ) top() *nodeItem { return pq[0] }
