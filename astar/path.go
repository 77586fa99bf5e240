package astar

import "fmt"

// constructFinalPath walks the parent chain from terminal back to the node
// without a parent (the start), summing the model distance of each hop.
// It returns the snapshots ordered start → terminal and the raw, unscaled
// distance. The caller applies Model.MetricScale.
//
// terminal must have been discovered by this search (ErrUndiscovered).
func (s *search) constructFinalPath(terminal NodeID) ([]Node, float64, error) {
	rec, ok := s.discovered[terminal]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUndiscovered, terminal)
	}

	// 1) Collect terminal → start.
	var (
		reversed []Node
		raw      float64
	)
	current := terminal
	for {
		reversed = append(reversed, s.snapshot(current, rec))
		if rec.parent == NoNode {
			break
		}
		parent, ok := s.discovered[rec.parent]
		if !ok {
			return nil, 0, fmt.Errorf("%w: parent %d of %d", ErrUndiscovered, rec.parent, current)
		}
		raw += s.model.Distance(current, rec.parent)
		current, rec = rec.parent, parent
	}

	// 2) Reverse into start → terminal order.
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed, raw, nil
}
