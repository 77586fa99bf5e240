package roadmodel

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/lvroute/astar"
)

var _ astar.Model = (*Network)(nil)

// Network is an immutable road network implementing astar.Model.
type Network struct {
	points    []astar.Point
	roads     []Road
	nodeRoads [][]int // road indices touching each node
	adj       *simple.UndirectedGraph
	tree      *kdtree.Tree // nil when no node is routable
	scale     float64
}

// New builds a Network from node positions and roads. Both slices are copied.
//
// Validation (in order):
//  1. options (ErrBadMetricScale).
//  2. every road has a known type (ErrUnknownRoadType) and at least two
//     nodes (ErrShortRoad).
//  3. every road node index is in range (ErrNodeIndex).
//
// Repeated consecutive nodes on a road are ignored; parallel segments
// collapse into one edge.
func New(nodes []astar.Point, roads []Road, opts ...Option) (*Network, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 1) Validate roads before allocating anything else.
	for i, r := range roads {
		if !r.Type.valid() {
			return nil, fmt.Errorf("%w: road %d: %v", ErrUnknownRoadType, i, r.Type)
		}
		if len(r.Nodes) < 2 {
			return nil, fmt.Errorf("%w: road %d has %d", ErrShortRoad, i, len(r.Nodes))
		}
		for _, idx := range r.Nodes {
			if idx < 0 || idx >= len(nodes) {
				return nil, fmt.Errorf("%w: road %d: index %d of %d nodes", ErrNodeIndex, i, idx, len(nodes))
			}
		}
	}

	n := &Network{
		points:    append([]astar.Point(nil), nodes...),
		roads:     make([]Road, len(roads)),
		nodeRoads: make([][]int, len(nodes)),
		adj:       simple.NewUndirectedGraph(),
		scale:     cfg.MetricScale,
	}

	// 2) Register every node so isolated ones still resolve in the graph.
	for i := range n.points {
		n.adj.AddNode(simple.Node(i))
	}

	// 3) Join consecutive road nodes.
	routable := make([]bool, len(nodes))
	for i, r := range roads {
		n.roads[i] = Road{Type: r.Type, Nodes: append([]int(nil), r.Nodes...)}
		for j, idx := range r.Nodes {
			if len(n.nodeRoads[idx]) == 0 || n.nodeRoads[idx][len(n.nodeRoads[idx])-1] != i {
				n.nodeRoads[idx] = append(n.nodeRoads[idx], i)
			}
			if r.Type.routable() {
				routable[idx] = true
			}
			if j == 0 {
				continue
			}
			prev := r.Nodes[j-1]
			if prev == idx || n.adj.HasEdgeBetween(int64(prev), int64(idx)) {
				continue
			}
			n.adj.SetEdge(n.adj.NewEdge(simple.Node(prev), simple.Node(idx)))
		}
	}

	// 4) Index routable nodes for nearest lookups.
	var pts nodePoints
	for i, ok := range routable {
		if ok {
			pts = append(pts, nodePoint{id: astar.NodeID(i), x: n.points[i].X, y: n.points[i].Y})
		}
	}
	if len(pts) > 0 {
		n.tree = kdtree.New(pts, false)
	}

	cfg.Logger.Debug("road network built",
		zap.Int("nodes", len(n.points)),
		zap.Int("roads", len(n.roads)),
		zap.Int("edges", n.adj.Edges().Len()),
		zap.Int("routable", len(pts)),
		zap.Float64("metric_scale", n.scale),
	)

	return n, nil
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.points) }

// RoadCount returns the number of roads.
func (n *Network) RoadCount() int { return len(n.roads) }

// EdgeCount returns the number of distinct undirected segments.
func (n *Network) EdgeCount() int { return n.adj.Edges().Len() }

// Roads returns copies of the roads passing through id, in input order.
func (n *Network) Roads(id astar.NodeID) []Road {
	if !n.valid(id) {
		return nil
	}
	out := make([]Road, 0, len(n.nodeRoads[id]))
	for _, ri := range n.nodeRoads[id] {
		r := n.roads[ri]
		out = append(out, Road{Type: r.Type, Nodes: append([]int(nil), r.Nodes...)})
	}

	return out
}

// FindNeighbors returns the IDs joined to id by a road segment, ascending.
// Unknown IDs have no neighbours.
func (n *Network) FindNeighbors(id astar.NodeID) []astar.NodeID {
	if !n.valid(id) {
		return nil
	}
	nodes := graph.NodesOf(n.adj.From(int64(id)))
	out := make([]astar.NodeID, len(nodes))
	for i, nb := range nodes {
		out[i] = astar.NodeID(nb.ID())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Distance returns the Euclidean distance between two nodes in model units.
func (n *Network) Distance(a, b astar.NodeID) float64 {
	pa, pb := n.points[a], n.points[b]
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
}

// Position returns the location of id.
func (n *Network) Position(id astar.NodeID) astar.Point { return n.points[id] }

// MetricScale returns metres per model unit.
func (n *Network) MetricScale() float64 { return n.scale }

func (n *Network) valid(id astar.NodeID) bool {
	return id >= 0 && int(id) < len(n.points)
}
