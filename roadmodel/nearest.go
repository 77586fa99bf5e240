package roadmodel

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/lvroute/astar"
)

// FindClosestNode returns the routable node nearest to p.
// Nodes reachable only by footway are skipped (ErrNoRoutableNode when none remain).
func (n *Network) FindClosestNode(p astar.Point) (astar.NodeID, error) {
	if n.tree == nil {
		return astar.NoNode, fmt.Errorf("%w (%d nodes)", ErrNoRoutableNode, len(n.points))
	}
	got, _ := n.tree.Nearest(nodePoint{x: p.X, y: p.Y})

	return got.(nodePoint).id, nil
}

// nodePoint is a kdtree.Comparable carrying its node ID.
type nodePoint struct {
	id   astar.NodeID
	x, y float64
}

// Compare returns the signed distance of p from c along dimension d
// (0 = x, 1 = y).
func (p nodePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(nodePoint)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("roadmodel: illegal dimension")
	}
}

func (p nodePoint) Dims() int { return 2 }

// Distance is squared Euclidean, as kdtree expects.
func (p nodePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(nodePoint)
	dx, dy := p.x-q.x, p.y-q.y

	return dx*dx + dy*dy
}

// nodePoints satisfies kdtree.Interface.
type nodePoints []nodePoint

func (p nodePoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p nodePoints) Len() int                              { return len(p) }
func (p nodePoints) Pivot(d kdtree.Dim) int                { return axis{nodePoints: p, Dim: d}.Pivot() }
func (p nodePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// axis sorts nodePoints along one dimension for median partitioning.
type axis struct {
	kdtree.Dim
	nodePoints
}

func (a axis) Less(i, j int) bool {
	switch a.Dim {
	case 0:
		return a.nodePoints[i].x < a.nodePoints[j].x
	case 1:
		return a.nodePoints[i].y < a.nodePoints[j].y
	default:
		panic("roadmodel: illegal dimension")
	}
}
func (a axis) Pivot() int { return kdtree.Partition(a, kdtree.MedianOfMedians(a)) }
func (a axis) Slice(start, end int) kdtree.SortSlicer {
	a.nodePoints = a.nodePoints[start:end]
	return a
}
func (a axis) Swap(i, j int) {
	a.nodePoints[i], a.nodePoints[j] = a.nodePoints[j], a.nodePoints[i]
}
