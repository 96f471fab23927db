package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-planar/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph that tolerates parallel edges:
	g := core.NewGraph(core.WithMultiEdges())

	// 2) Add edges (auto-adds vertices A, B, C):
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// After removing B: [A C] 1
}
