// Package scenario reads and writes the failure-scenario instance text
// format used by the rural-postman benchmark sets (gdb, bccm, eglese).
//
// The format is line-oriented:
//
//	NAME: gdb.1
//	NUMBER OF VERTICES: 12
//	VEHICLE CAPACITY: 37.5
//	NUMBER OF REQUIRED_EDGES: 11
//	NUMBER OF NON_REQUIRED_EDGES: 11
//	NUMBER OF VEHICLES: 3
//	LIST_REQUIRED_EDGES:
//	(1,2) edge weight 13.0
//	...
//	LIST_NON_REQUIRED_EDGES:
//	(4,7) edge weight 9.0
//	...
//	FAILURE_SCENARIO:
//	...
//	DEPOT: 1,5,9
//
// Parse builds a graph.Graph plus Metadata from it; Serialize is the
// structural inverse. Parsing is deliberately liberal: annotation wording
// varies across instance families ("edge weight", "cost"), so an edge line
// without a recognizable weight token falls back to weight 1.0 with a
// logged diagnostic instead of failing the file. The only fatal condition
// is a missing VEHICLE CAPACITY header, since without a battery range
// neither coverage radius nor depot placement is defined.
//
// The annotation-weight scanner (ExtractWeight), the depot-id splitter
// (ParseDepotIDs), and the vehicle-count rule (VehicleCountFor) are shared
// with the line-level rebalancer, which otherwise treats edge lines as
// opaque text.
package scenario
