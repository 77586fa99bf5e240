// Package roadmodel is a road-network adapter for the astar planner.
//
// A Network is a set of nodes in normalised [0,1]² map space joined by typed
// roads. Each road is an ordered polyline of node indices; every pair of
// consecutive nodes on a road becomes an undirected edge. Node IDs are the
// indices of the nodes slice passed to New.
//
// Start and end coordinates snap to the nearest node lying on at least one
// road that is not a footway. Footway-only nodes stay reachable as
// intermediate nodes but are never chosen as endpoints.
//
// Networks are immutable once built and safe for concurrent reads, so one
// Network can serve any number of planners.
//
// Networks can be described in YAML and loaded with Decode or LoadFile:
//
//	metric_scale: 1250   # metres per model unit
//	nodes:
//	  - {x: 0.1, y: 0.1}
//	  - {x: 0.5, y: 0.1}
//	  - {x: 0.5, y: 0.6}
//	roads:
//	  - {type: residential, nodes: [0, 1, 2]}
//
// Complexity:
//
//   - New: O(N log N + E) for N nodes and E road segments.
//   - FindClosestNode: O(log N) expected (k-d tree).
//   - FindNeighbors: O(d log d) for a node of degree d.
package roadmodel
