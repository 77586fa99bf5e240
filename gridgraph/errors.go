package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadMetricScale indicates a non-positive metric scale.
	ErrBadMetricScale = errors.New("gridgraph: metric scale must be positive")
	// ErrNoOpenCell indicates the grid has no passable cell to resolve a coordinate to.
	ErrNoOpenCell = errors.New("gridgraph: grid has no open cell")
)
