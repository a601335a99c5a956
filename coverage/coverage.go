// This file implements Compute and the bounded single-source sweep
// behind it.
package coverage

import (
	"container/heap"
	"fmt"

	"github.com/Eashwar-S/rpp-scenarios/graph"
)

// Compute returns, for every vertex of g, the set of vertices whose
// shortest-path distance from it is at most radius.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. radius must be ≥ 0 (ErrNegativeRadius).
//  3. No edge may carry a negative weight (ErrNegativeWeight); edges are
//     pre-scanned once so every per-source run can assume the invariant.
//
// Complexity: O(V · (V + E) log V) time, O(V²) space worst case.
func Compute(g *graph.Graph, radius float64) (Map, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d) weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	vertices := g.Vertices()
	cov := make(Map, len(vertices))
	for _, src := range vertices {
		cov[src] = reachWithin(g, src, radius)
	}

	return cov, nil
}

// reachWithin runs a single-source Dijkstra from src, bounded by radius,
// and returns the visited set. Lazy decrease-key: shorter rediscoveries are
// pushed as duplicates and stale heap entries skipped on pop.
func reachWithin(g *graph.Graph, src int, radius float64) Set {
	dist := map[int]float64{src: 0}
	reached := Set{src: {}}

	pq := nodePQ{{id: src, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: a shorter path to u was already finalized.
		if best, ok := dist[u]; ok && d > best {
			continue
		}

		// Heap pops in non-decreasing distance order, so once the minimum
		// exceeds the radius nothing reachable remains within it.
		if d > radius {
			break
		}
		reached[u] = struct{}{}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			continue // src always exists; unreachable in practice
		}
		for _, e := range neighbors {
			v := e.U
			if v == u {
				v = e.V
			}
			nd := d + e.Weight
			if nd > radius {
				continue
			}
			if best, ok := dist[v]; ok && nd >= best {
				continue
			}
			dist[v] = nd
			heap.Push(&pq, &nodeItem{id: v, dist: nd})
		}
	}

	return reached
}

// nodeItem is a (vertex, tentative distance) pair stored in the heap.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
