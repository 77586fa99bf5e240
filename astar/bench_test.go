package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/astar"
)

// latticeModel builds an n×n 4-connected lattice in 0–1 space.
func latticeModel(n int) *testModel {
	pts := make([]astar.Point, 0, n*n)
	step := 1 / float64(n-1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pts = append(pts, astar.Point{X: float64(x) * step, Y: float64(y) * step})
		}
	}
	m := newTestModel(1, pts...)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := astar.NodeID(y*n + x)
			if x+1 < n {
				m.link(id, id+1)
			}
			if y+1 < n {
				m.link(id, id+astar.NodeID(n))
			}
		}
	}

	return m
}

func BenchmarkSearch_Lattice64(b *testing.B) {
	m := latticeModel(64)
	p, err := astar.NewPlanner(m, 0, 0, 100, 100, astar.WithMaxIterations(0))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Search(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewPlanner_Lattice64(b *testing.B) {
	m := latticeModel(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.NewPlanner(m, 10, 20, 90, 80); err != nil {
			b.Fatal(err)
		}
	}
}
