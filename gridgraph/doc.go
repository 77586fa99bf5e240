// Package gridgraph treats a 2D grid of cells as a routable graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are open; all others are blocked.
//   - Identifies connected components of open cells.
//   - Implements astar.Model, so the route planner can search it directly.
//
// Why:
//
//   - Game and robot maps: obstacle grids with 4- or 8-way movement.
//   - Reachability checks before planning: two cells are connected iff they
//     share a component.
//   - Small, fully predictable fixtures for exercising route planning.
//
// Model contract:
//
//   - Node IDs are row-major indices y*Width + x.
//   - FindClosestNode takes normalised coordinates: (0,0) is the top-left
//     cell and (1,1) the bottom-right cell.
//   - Position returns cell coordinates (x, y) in cell units, so path
//     snapshots from a grid are in cells, not in the normalised input space.
//   - Distance is Euclidean in cell units, so it is an admissible heuristic
//     for both Conn4 and Conn8 movement.
//   - MetricScale is GridOptions.MetricScale (real-world length of a cell).
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - FindClosestNode:     O(W×H).
//   - FindNeighbors:       O(d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadMetricScale: MetricScale is not positive.
//   - ErrNoOpenCell: every cell is blocked, so no coordinate can be resolved.
package gridgraph
