package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvroute/astar"
)

var _ astar.Model = (*GridGraph)(nil)

// FindClosestNode maps a normalised point, where (0,0) is the top-left cell
// and (1,1) the bottom-right cell, onto the grid and returns the nearest open
// cell. Ties go to the lower row-major index.
// Returns ErrNoOpenCell if every cell is blocked.
// Complexity: O(W·H).
func (gg *GridGraph) FindClosestNode(p astar.Point) (astar.NodeID, error) {
	cx := p.X * float64(gg.Width-1)
	cy := p.Y * float64(gg.Height-1)

	best := astar.NoNode
	bestD := math.Inf(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			if d := dx*dx + dy*dy; d < bestD {
				best, bestD = gg.Index(x, y), d
			}
		}
	}
	if best == astar.NoNode {
		return astar.NoNode, ErrNoOpenCell
	}

	return best, nil
}

// FindNeighbors returns the open cells adjacent to id under gg.Conn, in
// offset order (clockwise from north). Blocked or out-of-range IDs have no
// neighbors.
// Complexity: O(d).
func (gg *GridGraph) FindNeighbors(id astar.NodeID) []astar.NodeID {
	if id < 0 || int(id) >= gg.Width*gg.Height {
		return nil
	}
	x, y := gg.Coordinate(id)
	if !gg.Open(x, y) {
		return nil
	}
	out := make([]astar.NodeID, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.Open(nx, ny) {
			out = append(out, gg.Index(nx, ny))
		}
	}

	return out
}

// Distance is the Euclidean distance between two cells in cell units:
// 1 for orthogonal steps, √2 for diagonal steps.
func (gg *GridGraph) Distance(a, b astar.NodeID) float64 {
	ax, ay := gg.Coordinate(a)
	bx, by := gg.Coordinate(b)

	return math.Hypot(float64(ax-bx), float64(ay-by))
}

// Position returns the cell coordinates of id, in cell units (0..Width-1,
// 0..Height-1), the same units as Distance. FindClosestNode input is
// normalised instead, so convert with x/(Width-1) and y/(Height-1) when
// feeding a position back.
func (gg *GridGraph) Position(id astar.NodeID) astar.Point {
	x, y := gg.Coordinate(id)
	return astar.Point{X: float64(x), Y: float64(y)}
}

// MetricScale returns the real-world length of one cell.
func (gg *GridGraph) MetricScale() float64 { return gg.metricScale }
