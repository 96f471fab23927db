// Package lvlathplanar tests graphs for planarity in linear time, builds
// their planar embeddings and isolates Kuratowski subgraphs when no
// embedding exists.
//
// What is inside:
//
//	core/       — undirected multigraph (loops and parallel edges on request) and read-only Source views
//	dfs/        — depth-first numbering: discovery order, low-points, least ancestors, tree edges
//	embedding/  — half-edge mesh holding one rotation system and its faces
//	planarity/  — Boyer-Myrvold engine: walkup, walkdown, embedding, K5 / K3,3 isolation
//	traverse/   — face traversals over a finished embedding (breadth-first, canonical order)
//	builder/    — deterministic fixtures: complete, bipartite, cycle, wheel, grid, platonic, Petersen, random
//	cmd/planarity — command-line front end reading TOML graph files
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Complete(5))
//	ok, _ := planarity.IsPlanar(g)      // false
//	ids, _ := planarity.Kuratowski(g)   // all ten edges of K5
//
//	g, _ = builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Cube))
//	m, _ := planarity.Embed(g)          // 8 vertices, 12 edges, 6 faces
//	_ = traverse.BreadthFirst(m, traverse.Visitor{BeginFace: func(embedding.DirectedEdge) { /* … */ }})
//
// A triangle drawn without crossings:
//
//	    A
//	   / \
//	  B───C
//
// has two faces: the inner triangle and the boundary face around it.
//
//	go get github.com/katalvlaran/lvlath-planar
package lvlathplanar
