package astar_test

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroute/astar"
)

var errEmptyModel = errors.New("test: model has no nodes")

// testModel is a minimal astar.Model over explicit points and undirected
// edges. Distance is Euclidean; neighbours are returned in ascending ID order.
type testModel struct {
	points []astar.Point
	adj    map[astar.NodeID][]astar.NodeID
	scale  float64
}

func newTestModel(scale float64, points ...astar.Point) *testModel {
	return &testModel{
		points: points,
		adj:    make(map[astar.NodeID][]astar.NodeID),
		scale:  scale,
	}
}

// link adds undirected edges between consecutive IDs.
func (m *testModel) link(ids ...astar.NodeID) *testModel {
	for i := 1; i < len(ids); i++ {
		a, b := ids[i-1], ids[i]
		m.adj[a] = append(m.adj[a], b)
		m.adj[b] = append(m.adj[b], a)
		sort.Slice(m.adj[a], func(i, j int) bool { return m.adj[a][i] < m.adj[a][j] })
		sort.Slice(m.adj[b], func(i, j int) bool { return m.adj[b][i] < m.adj[b][j] })
	}

	return m
}

func (m *testModel) FindClosestNode(p astar.Point) (astar.NodeID, error) {
	if len(m.points) == 0 {
		return astar.NoNode, errEmptyModel
	}
	best, bestD := astar.NoNode, math.Inf(1)
	for i, q := range m.points {
		if d := math.Hypot(p.X-q.X, p.Y-q.Y); d < bestD {
			best, bestD = astar.NodeID(i), d
		}
	}

	return best, nil
}

func (m *testModel) FindNeighbors(id astar.NodeID) []astar.NodeID {
	return m.adj[id]
}

func (m *testModel) Distance(a, b astar.NodeID) float64 {
	pa, pb := m.points[a], m.points[b]
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
}

func (m *testModel) Position(id astar.NodeID) astar.Point { return m.points[id] }

func (m *testModel) MetricScale() float64 { return m.scale }

// optimalDistance computes the true shortest raw distance between a and b
// with gonum's Dijkstra, as an oracle for planner results.
func (m *testModel) optimalDistance(a, b astar.NodeID) float64 {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range m.points {
		if g.Node(int64(i)) == nil {
			g.AddNode(simple.Node(i))
		}
	}
	for u, nbs := range m.adj {
		for _, v := range nbs {
			if u < v {
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(u),
					T: simple.Node(v),
					W: m.Distance(u, v),
				})
			}
		}
	}
	shortest := path.DijkstraFrom(simple.Node(a), g)

	return shortest.WeightTo(int64(b))
}

// grid3x3 builds a 3×3 unit grid with 4-adjacency. Node (x,y) has ID y*3+x
// and position (x,y) × 0.5, so caller coordinate 100 maps to cell 2.
func grid3x3(scale float64) *testModel {
	var pts []astar.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			pts = append(pts, astar.Point{X: float64(x) * 0.5, Y: float64(y) * 0.5})
		}
	}
	m := newTestModel(scale, pts...)
	for y := 0; y < 3; y++ {
		m.link(astar.NodeID(y*3), astar.NodeID(y*3+1), astar.NodeID(y*3+2))
	}
	for x := 0; x < 3; x++ {
		m.link(astar.NodeID(x), astar.NodeID(3+x), astar.NodeID(6+x))
	}

	return m
}

// pathDistance sums the model distance over consecutive path nodes.
func pathDistance(m astar.Model, nodes []astar.Node) float64 {
	var sum float64
	for i := 1; i < len(nodes); i++ {
		sum += m.Distance(nodes[i-1].ID, nodes[i].ID)
	}

	return sum
}

// pinnedModel resolves successive FindClosestNode calls to the given IDs in
// order, regardless of the coordinates. It is not safe for concurrent use.
type pinnedModel struct {
	*testModel
	ids []astar.NodeID
}

func (m *pinnedModel) FindClosestNode(astar.Point) (astar.NodeID, error) {
	if len(m.ids) == 0 {
		return astar.NoNode, errEmptyModel
	}
	id := m.ids[0]
	m.ids = m.ids[1:]

	return id, nil
}
