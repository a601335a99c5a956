// Package coverage computes bounded-radius reachability over a scenario
// graph: for every vertex, the set of vertices whose shortest-path distance
// from it is at most a given radius.
//
// What
//
//   - Compute(g, radius) runs one bounded Dijkstra per vertex and records
//     set membership only — no distances or paths are returned.
//   - Both required and non-required edges participate; requiredness is a
//     routing concern, not a reachability one.
//   - The radius bound is inclusive: distance == radius still covers.
//
// Why
//
//   - Depot placement treats a vertex as served when some depot lies within
//     a fraction of the vehicle's battery range. The coverage map is the
//     input to that greedy selection, recomputed fresh per (graph, radius)
//     pair and never mutated afterwards.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O(V · (V + E) log V) — one lazy-decrease-key Dijkstra per
//     source. Instances have at most a few thousand vertices; the bound is
//     practical well beyond the benchmark sizes (hundreds of vertices).
//   - Space: O(V + E) per source run, O(V²) worst case for the result map.
package coverage
