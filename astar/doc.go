// Package astar plans routes over a road-network model with A* search.
//
// Given a Model and two coordinate pairs, a Planner resolves the nearest
// model nodes and searches between them, expanding nodes in order of
// g + h, where g is the cost from the start and h the heuristic distance
// to the goal. The result is an ordered path of node snapshots and the total
// distance in real-world units (raw distance × Model.MetricScale()).
//
// Search states:
//
//	INIT ──▶ EXPANDING ──▶ FOUND
//	             │   └───▶ ITERATION_LIMIT
//	             └───────▶ EXHAUSTED
//
// Behaviour worth knowing:
//
//   - A node is "visited" once it is assigned a cost and parent. Visited
//     nodes are never re-assigned, even when a cheaper route appears later,
//     so paths can be suboptimal on graphs with competing routes.
//   - The goal test matches by node identity, falling back to equal
//     coordinates.
//   - Exhaustion and the iteration cap are outcomes, not errors. The result
//     then holds the start-only path and zero distance.
//   - Caller coordinates are multiplied by Options.InputScale (0.01 by
//     default) before the closest-node lookup.
//
// Search bookkeeping lives in a per-call side table; the model is read
// only, and a Planner can be searched from several goroutines at once.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V discovered nodes and E inspected edges.
//   - Space: O(V).
//
// Example:
//
//	res, err := astar.Route(model, 10, 10, 90, 90)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Printf("%d nodes, %.1f m\n", len(res.Path), res.Distance)
//	}
package astar
