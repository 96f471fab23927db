package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/dfs"
)

// BenchmarkNumber_Chain10000 measures the numbering pass on a path of 10,000 vertices.
func BenchmarkNumber_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Number(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNumber_Grid100 measures the numbering pass on a 100×100 grid.
func BenchmarkNumber_Grid100(b *testing.B) {
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	for r := 0; r < 100; r++ {
		for c := 0; c < 100; c++ {
			if c+1 < 100 {
				_, _ = g.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < 100 {
				_, _ = g.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Number(g); err != nil {
			b.Fatal(err)
		}
	}
}
