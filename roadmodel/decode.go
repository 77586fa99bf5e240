package roadmodel

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/astar"
)

// description is the YAML form of a Network.
type description struct {
	MetricScale *float64 `yaml:"metric_scale"`
	Nodes       []struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"nodes"`
	Roads []struct {
		Type  RoadType `yaml:"type"`
		Nodes []int    `yaml:"nodes"`
	} `yaml:"roads"`
}

// Decode reads a YAML network description from r and builds a Network.
// Unknown keys are rejected. A metric_scale in the document, zero included,
// is validated and applies before opts, so an explicit WithMetricScale wins.
// Without one the scale defaults to 1.
func Decode(r io.Reader, opts ...Option) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc description
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	nodes := make([]astar.Point, len(doc.Nodes))
	for i, p := range doc.Nodes {
		nodes[i] = astar.Point{X: p.X, Y: p.Y}
	}
	roads := make([]Road, len(doc.Roads))
	for i, r := range doc.Roads {
		roads[i] = Road{Type: r.Type, Nodes: r.Nodes}
	}

	if doc.MetricScale != nil {
		opts = append([]Option{WithMetricScale(*doc.MetricScale)}, opts...)
	}

	return New(nodes, roads, opts...)
}

// LoadFile decodes the network description stored at path.
func LoadFile(path string, opts ...Option) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmodel: open %s: %w", path, err)
	}
	defer f.Close()

	n, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}
