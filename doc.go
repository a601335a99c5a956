// Package rppscenarios prepares rural-postman benchmark instances under
// failure scenarios: battery-range depot placement and required-edge
// rebalancing over the gdb/bccm/eglese instance families.
//
// The pipeline, leaves first:
//
//	graph/     — undirected weighted model with a service-required flag
//	coverage/  — bounded-radius reachability via per-vertex Dijkstra
//	depot/     — greedy maximum-coverage depot selection
//	scenario/  — text codec for the instance format + shared helpers
//	rebalance/ — line-level required/non-required edge repartition
//	batch/     — instance tables, directory lifecycle, per-file driver
//
// Data flow: raw text → scenario.Parse → (graph, depots, capacity) →
// coverage.Compute → depot.Select → scenario.RewriteDepotLines → text.
// The rebalancer works on raw lines only and never builds a graph.
//
// The cmd/failprep command wires both paths behind flags.
package rppscenarios
