package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/ashotpetrossian/Algorithms/core"
)

// ShortestPaths computes distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum cost to v, Unreached if v was not reached.
//   - prev: prev[v] is the predecessor of v on a shortest path, -1 for the
//     source and for unreached vertices.
//   - err:  ErrNilGraph or a wrapped core.ErrVertexOutOfRange.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPaths(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %d", core.ErrVertexOutOfRange, source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path source → target from a prev slice returned by
// ShortestPaths. It returns nil if target was not reached.
func PathTo(dist []int64, prev []int, target int) []int {
	if target < 0 || target >= len(dist) || dist[target] == Unreached {
		return nil
	}

	var path []int
	for v := target; v != -1; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64 // best known distance from source
	prev    []int   // predecessor on the best known path
	visited []bool  // distance is final
	pq      nodePQ
}

// init marks every vertex unreached and pushes the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Unreached
		r.prev[v] = -1
	}
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process finalizes vertices in order of distance until the heap is empty
// or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every neighbor of the finalized vertex u.
func (r *runner) relax(u int) {
	neighbors, _ := r.g.Neighbors(u) // u was validated or popped from the heap
	du := r.dist[u]
	for _, nb := range neighbors {
		v, w := nb.To, nb.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[v] || w > r.options.MaxDistance-du {
			continue
		}

		newDist := du + w
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a vertex and its distance when pushed.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)        { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
