package astar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilModel indicates that a nil Model was passed to NewPlanner.
	ErrNilModel = errors.New("astar: model is nil")

	// ErrNoClosestNode indicates that the model could not resolve a coordinate
	// to any node (typically an empty graph). The planner cannot proceed.
	ErrNoClosestNode = errors.New("astar: no closest node for coordinate")

	// ErrUndiscovered indicates that path reconstruction was requested for a
	// node that the current search never discovered.
	ErrUndiscovered = errors.New("astar: node was not discovered by the search")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// NodeID identifies a node inside a Model. Valid IDs are non-negative.
type NodeID int64

// NoNode marks the absence of a node, e.g. the parent of the start node.
const NoNode NodeID = -1

// DefaultInputScale converts the caller's 0–100 coordinate convention into
// the model's normalised 0–1 space.
const DefaultInputScale = 0.01

// DefaultMaxIterations caps the number of open-set selections per search.
const DefaultMaxIterations = 500

// Point is a 2-D position in the model's own map units.
type Point struct {
	X, Y float64
}

// Model is the road-network collaborator consumed by the planner.
//
// Implementations own node identity and geometry; the planner never mutates
// them. Read methods must be safe for concurrent use if the same Model is
// searched from several goroutines.
type Model interface {
	// FindClosestNode returns the node nearest to p.
	// It must return an error when no node can be resolved (e.g. empty graph).
	FindClosestNode(p Point) (NodeID, error)

	// FindNeighbors returns the nodes adjacent to id. It is idempotent and
	// has no side effects.
	FindNeighbors(id NodeID) []NodeID

	// Distance is symmetric and non-negative. It is used as both edge cost
	// and heuristic.
	Distance(a, b NodeID) float64

	// Position returns the location of id.
	Position(id NodeID) Point

	// MetricScale converts model distance units into real-world units.
	MetricScale() float64
}

// Heuristic estimates the remaining cost from node to goal.
type Heuristic func(model Model, node, goal NodeID) float64

// DistanceHeuristic is the default heuristic: the model distance to the goal.
func DistanceHeuristic(model Model, node, goal NodeID) float64 {
	return model.Distance(node, goal)
}

// Node is an immutable snapshot of a node discovered during a search.
type Node struct {
	ID NodeID
	Point

	// G is the cost from the start along the recorded parent chain.
	G float64
	// H is the heuristic estimate to the goal.
	H float64
	// Parent is the predecessor on the recorded path, or NoNode for the start.
	Parent NodeID
}

// F returns G + H, the open-set priority of the node.
func (n Node) F() float64 { return n.G + n.H }

// Status is the terminal state of a search.
type Status int

const (
	// StatusUnknown is the zero value; no finished search reports it.
	StatusUnknown Status = iota
	// StatusFound means the goal (or a node at the goal's coordinates) was reached.
	StatusFound
	// StatusExhausted means the open set emptied before the goal was reached.
	StatusExhausted
	// StatusIterationLimit means MaxIterations selections were made without
	// reaching the goal.
	StatusIterationLimit
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusIterationLimit:
		return "iteration-limit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one search. It is owned by the caller.
//
//   - Path: snapshots from start to terminal node, inclusive. On failure it
//     holds only the start node.
//   - Distance: RawDistance × Model.MetricScale(). Zero on failure.
//   - Iterations: open-set selections made.
//   - Expanded: nodes whose neighbours were expanded.
//   - Last: node current when the search stopped. On exhaustion this is the
//     last expanded node, which is the start if nothing was ever selected.
type Result struct {
	Status      Status
	Path        []Node
	Distance    float64
	RawDistance float64
	Iterations  int
	Expanded    int
	Last        NodeID
}

// Found reports whether the search reached the goal.
func (r *Result) Found() bool { return r != nil && r.Status == StatusFound }

// NodeIDs returns the IDs along Path.
func (r *Result) NodeIDs() []NodeID {
	if r == nil {
		return nil
	}
	ids := make([]NodeID, len(r.Path))
	for i, n := range r.Path {
		ids[i] = n.ID
	}

	return ids
}

// Option configures the planner via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewPlanner.
type Option func(*Options)

// Options holds the planner configuration.
type Options struct {
	// InputScale multiplies caller coordinates before FindClosestNode.
	InputScale float64

	// MaxIterations caps open-set selections per search. 0 disables the cap.
	MaxIterations int

	// Heuristic estimates the remaining cost to the goal.
	Heuristic Heuristic

	// OnDiscover is called when a node is first assigned a cost and parent.
	OnDiscover func(n Node)

	// OnExpand is called immediately before a node's neighbours are expanded.
	OnExpand func(n Node)

	// Logger receives one debug entry per finished search.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with:
//   - InputScale:    DefaultInputScale (0–100 → 0–1)
//   - MaxIterations: DefaultMaxIterations
//   - Heuristic:     DistanceHeuristic
//   - no-op hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		InputScale:    DefaultInputScale,
		MaxIterations: DefaultMaxIterations,
		Heuristic:     DistanceHeuristic,
		OnDiscover:    func(Node) {},
		OnExpand:      func(Node) {},
		Logger:        zap.NewNop(),
	}
}

// WithInputScale sets the factor applied to caller coordinates.
// The factor must be positive.
func WithInputScale(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: input scale must be positive (%g)", ErrOptionViolation, f)
			return
		}
		o.InputScale = f
	}
}

// WithMaxIterations sets the selection cap.
//
//	n > 0:  stop with StatusIterationLimit after n selections
//	n == 0: no cap
//	n < 0:  invalid → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithHeuristic replaces the default distance heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnDiscover registers a callback run when a node is discovered.
func WithOnDiscover(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers a callback run before a node is expanded.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
