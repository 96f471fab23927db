package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-planar/builder"
	"github.com/katalvlaran/lvlath-planar/embedding"
	"github.com/katalvlaran/lvlath-planar/planarity"
	"github.com/katalvlaran/lvlath-planar/traverse"
)

// ExampleBreadthFirst counts the faces and directed edges of the cube.
func ExampleBreadthFirst() {
	g, _ := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Cube))
	m, _ := planarity.Embed(g)

	faces, darts := 0, 0
	_ = traverse.BreadthFirst(m, traverse.Visitor{
		BeginFace: func(embedding.DirectedEdge) { faces++ },
		NextEdge:  func(embedding.DirectedEdge) { darts++ },
	})
	fmt.Println("faces:", faces)
	fmt.Println("directed edges:", darts)

	// Output:
	// faces: 6
	// directed edges: 24
}

// ExampleCanonical reports the octahedron's triangles in canonical order,
// followed by its boundary.
func ExampleCanonical() {
	g, _ := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Octahedron))
	m, _ := planarity.Embed(g)

	var sizes []int
	_ = traverse.Canonical(m, traverse.Visitor{
		BeginFace: func(embedding.DirectedEdge) { sizes = append(sizes, 0) },
		NextEdge:  func(embedding.DirectedEdge) { sizes[len(sizes)-1]++ },
	})
	fmt.Println("faces:", len(sizes))
	fmt.Println("boundary edges:", sizes[len(sizes)-1])

	order, _ := traverse.CanonicalOrder(m)
	fmt.Println("ordered vertices:", len(order))

	// Output:
	// faces: 8
	// boundary edges: 3
	// ordered vertices: 6
}
