package roadmodel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrNodeIndex indicates a road referencing a node outside the nodes slice.
	ErrNodeIndex = errors.New("roadmodel: road references unknown node")

	// ErrShortRoad indicates a road with fewer than two nodes.
	ErrShortRoad = errors.New("roadmodel: road needs at least two nodes")

	// ErrBadMetricScale indicates a non-positive or non-finite metric scale.
	ErrBadMetricScale = errors.New("roadmodel: metric scale must be positive and finite")

	// ErrUnknownRoadType indicates a road type outside the known set.
	ErrUnknownRoadType = errors.New("roadmodel: unknown road type")

	// ErrNoRoutableNode indicates that no node lies on a non-footway road.
	ErrNoRoutableNode = errors.New("roadmodel: network has no routable node")

	// ErrDecode indicates a malformed network description.
	ErrDecode = errors.New("roadmodel: cannot decode network description")
)

// RoadType classifies a road.
type RoadType int

// Road classes. Invalid is the zero value and never appears in a Network.
const (
	Invalid RoadType = iota
	Unclassified
	Service
	Residential
	Tertiary
	Secondary
	Primary
	Trunk
	Motorway
	Footway
)

var roadTypeNames = [...]string{
	Invalid:      "invalid",
	Unclassified: "unclassified",
	Service:      "service",
	Residential:  "residential",
	Tertiary:     "tertiary",
	Secondary:    "secondary",
	Primary:      "primary",
	Trunk:        "trunk",
	Motorway:     "motorway",
	Footway:      "footway",
}

// String implements fmt.Stringer.
func (t RoadType) String() string {
	if t < 0 || int(t) >= len(roadTypeNames) {
		return fmt.Sprintf("RoadType(%d)", int(t))
	}

	return roadTypeNames[t]
}

// ParseRoadType maps a case-insensitive name to its RoadType.
// "invalid" is not accepted.
func ParseRoadType(s string) (RoadType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range roadTypeNames {
		if n == name && RoadType(i) != Invalid {
			return RoadType(i), nil
		}
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnknownRoadType, s)
}

// UnmarshalYAML decodes a road type from its name.
func (t *RoadType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseRoadType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed

	return nil
}

// routable reports whether endpoints may snap to nodes on this road type.
func (t RoadType) routable() bool { return t != Footway }

func (t RoadType) valid() bool { return t > Invalid && int(t) < len(roadTypeNames) }

// Road is an ordered polyline of node indices.
type Road struct {
	Type  RoadType
	Nodes []int
}

// Option configures a Network.
type Option func(*Options)

// Options holds Network settings.
type Options struct {
	// MetricScale converts model units to metres.
	MetricScale float64

	// Logger receives the build summary.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns a metric scale of 1 and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MetricScale: 1,
		Logger:      zap.NewNop(),
	}
}

// WithMetricScale sets the metres-per-unit factor reported by MetricScale.
func WithMetricScale(f float64) Option {
	return func(o *Options) {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			o.err = fmt.Errorf("%w: %g", ErrBadMetricScale, f)
			return
		}
		o.MetricScale = f
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
