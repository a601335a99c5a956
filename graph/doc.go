// Package graph holds the in-memory model for arc-routing scenario
// instances: an undirected weighted graph whose vertices are the integers
// 1..N and whose edges carry a travel-time weight and a service-required
// flag.
//
// What
//
//   - Vertices are declared up front (NewGraph(n) registers 1..n); edges
//     referencing ids outside that range grow the vertex set, mirroring the
//     liberal behavior of the scenario text format.
//   - At most one edge per unordered vertex pair; adding the same pair again
//     overwrites weight and requiredness.
//   - Enumeration surfaces (Vertices, Edges, Neighbors) are sorted
//     ascending, so every traversal built on them is reproducible.
//
// Why
//
//   - The depot-placement pipeline builds one graph per parsed scenario
//     file, runs bounded shortest-path coverage over it, and discards it.
//     The model is therefore deliberately small: no directedness, no
//     multi-edges, no locking — a single goroutine owns each instance.
//
// Complexity
//
//   - AddEdge / HasEdge: O(1) amortized.
//   - Vertices / Edges: O(V log V) and O(E log E) for the sort.
package graph
