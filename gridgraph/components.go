package gridgraph

import "github.com/katalvlaran/lvroute/astar"

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of node IDs
// in BFS order from its lowest-index cell.
//
// Two cells are mutually reachable by the planner iff they share a component.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]astar.NodeID {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]astar.NodeID

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue // blocked
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []astar.NodeID{i0}
			seen[i0] = true
			var comp []astar.NodeID

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, v := range gg.FindNeighbors(u) {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the component
// holding id, or -1 if id is blocked or out of range.
// Complexity: O(W·H·d).
func (gg *GridGraph) ComponentOf(id astar.NodeID) int {
	for ci, comp := range gg.ConnectedComponents() {
		for _, v := range comp {
			if v == id {
				return ci
			}
		}
	}

	return -1
}
