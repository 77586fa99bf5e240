package astar

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"
)

// Planner resolves a start and an end coordinate to model nodes and runs
// A* searches between them. A Planner is immutable after construction;
// every Search call owns its own bookkeeping, so concurrent calls are safe
// whenever the model's read methods are.
type Planner struct {
	model   Model
	start   NodeID
	end     NodeID
	options Options
}

// NewPlanner resolves (startX, startY) and (endX, endY), given in the
// caller's coordinate convention, to the closest model nodes.
// Coordinates are multiplied by Options.InputScale first (0.01 by default,
// mapping 0–100 onto the model's 0–1 space). No search is performed here.
//
// Preconditions and validation (in order):
//  1. model must be non-nil (ErrNilModel).
//  2. every Option must be valid (ErrOptionViolation).
//  3. both coordinates must resolve to a node (ErrNoClosestNode).
func NewPlanner(model Model, startX, startY, endX, endY float64, opts ...Option) (*Planner, error) {
	if model == nil {
		return nil, ErrNilModel
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := cfg.InputScale
	start, err := model.FindClosestNode(Point{X: startX * s, Y: startY * s})
	if err != nil {
		return nil, fmt.Errorf("%w: start (%g, %g): %w", ErrNoClosestNode, startX, startY, err)
	}
	end, err := model.FindClosestNode(Point{X: endX * s, Y: endY * s})
	if err != nil {
		return nil, fmt.Errorf("%w: end (%g, %g): %w", ErrNoClosestNode, endX, endY, err)
	}

	return &Planner{
		model:   model,
		start:   start,
		end:     end,
		options: cfg,
	}, nil
}

// Route builds a planner and runs a single search.
func Route(model Model, startX, startY, endX, endY float64, opts ...Option) (*Result, error) {
	p, err := NewPlanner(model, startX, startY, endX, endY, opts...)
	if err != nil {
		return nil, err
	}

	return p.Search()
}

// Start returns the node resolved for the start coordinate.
func (p *Planner) Start() NodeID { return p.start }

// End returns the node resolved for the end coordinate.
func (p *Planner) End() NodeID { return p.end }

// Search runs the A* state machine from Start to End:
//
//	INIT → EXPANDING → {FOUND, EXHAUSTED, ITERATION_LIMIT}
//
// FOUND yields the reconstructed path and its scaled distance. EXHAUSTED and
// ITERATION_LIMIT are outcomes, not errors: the path holds only the start
// node and the distance is zero.
//
// Once a node is discovered its cost and parent are frozen for the rest of
// the search, even if a cheaper route to it shows up later. This can yield a
// suboptimal path on graphs with several routes of differing cost to the
// same node.
//
// The coordinate fallback of the goal test applies to selected nodes only, so
// a FOUND path always has at least two nodes unless Start() == End().
//
// The returned error is non-nil only if path reconstruction breaks its
// contract, which indicates an inconsistent model.
func (p *Planner) Search() (*Result, error) {
	r := newSearch(p)
	res, err := r.run()
	if err != nil {
		return nil, err
	}

	p.options.Logger.Debug("astar search finished",
		zap.Stringer("status", res.Status),
		zap.Int64("start", int64(p.start)),
		zap.Int64("end", int64(p.end)),
		zap.Int("iterations", res.Iterations),
		zap.Int("expanded", res.Expanded),
		zap.Int("path_nodes", len(res.Path)),
		zap.Float64("distance", res.Distance),
	)

	return res, nil
}

// record is the per-search bookkeeping for one discovered node.
type record struct {
	g, h   float64
	parent NodeID
}

// search holds the mutable state of a single Search call.
type search struct {
	model Model
	start NodeID
	end   NodeID
	cfg   Options

	// discovered doubles as the visited flag: a node is visited iff it has a record.
	discovered map[NodeID]*record
	open       openSet

	iterations int
	expanded   int
}

func newSearch(p *Planner) *search {
	return &search{
		model:      p.model,
		start:      p.start,
		end:        p.end,
		cfg:        p.options,
		discovered: make(map[NodeID]*record),
		open:       make(openSet, 0),
	}
}

// run drives the state machine.
func (s *search) run() (*Result, error) {
	// INIT: the start is discovered with zero cost and no parent.
	s.discovered[s.start] = &record{
		g:      0,
		h:      s.heuristic(s.start),
		parent: NoNode,
	}
	heap.Init(&s.open)

	// Only identity counts here; the coordinate fallback applies to selected nodes.
	if s.start == s.end {
		return s.finish(StatusFound, s.start)
	}

	current := s.start
	for {
		s.addNeighbors(current)

		next, ok := s.nextNode()
		if !ok {
			return s.finish(StatusExhausted, current)
		}
		s.iterations++
		current = next

		if s.isGoal(current) {
			return s.finish(StatusFound, current)
		}
		if s.cfg.MaxIterations > 0 && s.iterations >= s.cfg.MaxIterations {
			return s.finish(StatusIterationLimit, current)
		}
	}
}

// heuristic evaluates the configured heuristic against the goal.
func (s *search) heuristic(id NodeID) float64 {
	return s.cfg.Heuristic(s.model, id, s.end)
}

// isGoal matches by identity first, then by coordinates.
func (s *search) isGoal(id NodeID) bool {
	if id == s.end {
		return true
	}

	return s.model.Position(id) == s.model.Position(s.end)
}

// addNeighbors discovers every not-yet-visited neighbour of current.
// Visited neighbours are skipped without any cost comparison.
func (s *search) addNeighbors(current NodeID) {
	cur := s.discovered[current]
	s.cfg.OnExpand(s.snapshot(current, cur))
	s.expanded++

	for _, nb := range s.model.FindNeighbors(current) {
		if _, visited := s.discovered[nb]; visited {
			continue
		}
		rec := &record{
			g:      cur.g + s.model.Distance(current, nb),
			h:      s.heuristic(nb),
			parent: current,
		}
		s.discovered[nb] = rec
		heap.Push(&s.open, &openItem{id: nb, f: rec.g + rec.h})
		s.cfg.OnDiscover(s.snapshot(nb, rec))
	}
}

// nextNode removes and returns the open node with the lowest g+h.
// ok is false once the open set is empty.
func (s *search) nextNode() (id NodeID, ok bool) {
	if s.open.Len() == 0 {
		return NoNode, false
	}
	item := heap.Pop(&s.open).(*openItem)

	return item.id, true
}

// finish converts a terminal state into a Result.
func (s *search) finish(status Status, last NodeID) (*Result, error) {
	res := &Result{
		Status:     status,
		Iterations: s.iterations,
		Expanded:   s.expanded,
		Last:       last,
	}
	if status != StatusFound {
		res.Path = []Node{s.snapshot(s.start, s.discovered[s.start])}
		return res, nil
	}

	path, raw, err := s.constructFinalPath(last)
	if err != nil {
		return nil, err
	}
	res.Path = path
	res.RawDistance = raw
	res.Distance = raw * s.model.MetricScale()

	return res, nil
}

func (s *search) snapshot(id NodeID, rec *record) Node {
	return Node{
		ID:     id,
		Point:  s.model.Position(id),
		G:      rec.g,
		H:      rec.h,
		Parent: rec.parent,
	}
}
