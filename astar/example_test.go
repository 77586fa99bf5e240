package astar_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/astar"
)

// ring is a square ring of four corners in 0–1 space, 250 m per model unit.
type ring struct{}

var corners = []astar.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

func (ring) FindClosestNode(p astar.Point) (astar.NodeID, error) {
	best, bestD := astar.NoNode, math.Inf(1)
	for i, c := range corners {
		if d := math.Hypot(p.X-c.X, p.Y-c.Y); d < bestD {
			best, bestD = astar.NodeID(i), d
		}
	}

	return best, nil
}

func (ring) FindNeighbors(id astar.NodeID) []astar.NodeID {
	return []astar.NodeID{(id + 3) % 4, (id + 1) % 4}
}

func (ring) Distance(a, b astar.NodeID) float64 {
	pa, pb := corners[a], corners[b]
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
}

func (ring) Position(id astar.NodeID) astar.Point { return corners[id] }
func (ring) MetricScale() float64 { return 250 }

// ExampleRoute plans across the ring from the bottom-left corner to the
// top-right one, using the default 0–100 caller coordinates.
func ExampleRoute() {
	res, err := astar.Route(ring{}, 0, 0, 100, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status)
	fmt.Println(len(res.Path), "nodes")
	fmt.Printf("%.0f m\n", res.Distance)
	// Output:
	// found
	// 3 nodes
	// 500 m
}

// ExamplePlanner_Search shows the degenerate result of a capped search.
func ExamplePlanner_Search() {
	p, err := astar.NewPlanner(ring{}, 0, 0, 100, 100, astar.WithMaxIterations(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := p.Search()
	fmt.Println(res.Status, res.NodeIDs(), res.Distance)
	// Output:
	// iteration-limit [0] 0
}
