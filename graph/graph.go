// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor, plus the mutation and query methods the pipeline uses.
package graph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph operations.
var (
	// ErrBadVertexID indicates a vertex id below 1; scenario vertices are 1-based.
	ErrBadVertexID = errors.New("graph: vertex id must be >= 1")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be positive")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Edge is an undirected connection between two vertices.
//
// U and V are the endpoints as written in the scenario file; the pair is
// stored once with U ≤ V. Weight is travel time. Required marks the edge as
// needing service by a route, as opposed to traversal-only.
type Edge struct {
	U, V     int
	Weight   float64
	Required bool
}

// Graph is an undirected weighted graph over integer vertices.
//
// One edge per unordered pair; neighbors[u][v] and neighbors[v][u] point to
// the same Edge value's data. Not safe for concurrent mutation; each
// pipeline run owns its graph exclusively.
type Graph struct {
	vertices  map[int]struct{}
	neighbors map[int]map[int]Edge
	edgeCount int
}

// NewGraph creates a graph with vertices 1..n registered and no edges.
// n may be 0 for an empty graph.
func NewGraph(n int) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}, n),
		neighbors: make(map[int]map[int]Edge),
	}
	for id := 1; id <= n; id++ {
		g.vertices[id] = struct{}{}
	}

	return g
}

// AddVertex registers id if missing. Idempotent.
func (g *Graph) AddVertex(id int) error {
	if id < 1 {
		return ErrBadVertexID
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is registered.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddEdge stores the undirected edge u—v with the given weight and
// requiredness. Unknown endpoints are registered on the fly (the scenario
// format occasionally references vertices beyond the declared count).
// Re-adding an existing pair overwrites its weight and flag.
func (g *Graph) AddEdge(u, v int, weight float64, required bool) error {
	if u < 1 || v < 1 {
		return ErrBadVertexID
	}
	if weight <= 0 {
		return ErrBadWeight
	}
	g.vertices[u] = struct{}{}
	g.vertices[v] = struct{}{}

	// Canonical orientation: store with the smaller endpoint first.
	a, b := u, v
	if a > b {
		a, b = b, a
	}
	e := Edge{U: a, V: b, Weight: weight, Required: required}

	if g.neighbors[u] == nil {
		g.neighbors[u] = make(map[int]Edge)
	}
	if g.neighbors[v] == nil {
		g.neighbors[v] = make(map[int]Edge)
	}
	if _, exists := g.neighbors[u][v]; !exists {
		g.edgeCount++
	}
	g.neighbors[u][v] = e
	g.neighbors[v][u] = e

	return nil
}

// HasEdge reports whether an edge between u and v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.neighbors[u][v]

	return ok
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of stored edges (each pair counted once).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Vertices returns all vertex ids sorted ascending.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns all edges sorted by (U, V) ascending, each pair once.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for u, adj := range g.neighbors {
		for v, e := range adj {
			if u <= v { // emit each undirected pair once; self-loops have u == v
				edges = append(edges, e)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}

// Neighbors returns the edges incident to u, sorted by the opposite
// endpoint ascending. Returns ErrVertexNotFound for unregistered vertices.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, ErrVertexNotFound
	}
	adj := g.neighbors[u]
	others := make([]int, 0, len(adj))
	for v := range adj {
		others = append(others, v)
	}
	sort.Ints(others)

	edges := make([]Edge, 0, len(others))
	for _, v := range others {
		edges = append(edges, adj[v])
	}

	return edges, nil
}
