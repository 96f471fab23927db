// SPDX-License-Identifier: MIT
// Package: lvlath-planar/builder
//
// impl_platonic.go - PlatonicSolid(name) and Petersen().
//
// Contract:
//   - Vertices are cfg.idFn(0..V-1) in ascending order.
//   - Edges follow the tables in variants_platonic.go.
//   - Every Platonic solid is a 3-connected planar graph; the Petersen graph
//     is non-planar and contains a K3,3 subdivision but no K5 subdivision.
//
// Complexity: O(V+E) for the selected table (V ≤ 20, E ≤ 30).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-planar/core"
)

const (
	methodPlatonicSolid = "PlatonicSolid"
	methodPetersen      = "Petersen"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic solid.
// Unknown names fail with ErrOptionViolation.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}

		return addTable(g, cfg, methodPlatonicSolid, n, platonicEdgeSets[name])
	}
}

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return addTable(g, cfg, methodPetersen, petersenVertices, petersenEdges)
	}
}

// addTable adds n vertices and the listed index pairs.
func addTable(g *core.Graph, cfg builderConfig, method string, n int, edges []pair) error {
	ids, err := addVertices(g, method, n, cfg.idFn)
	if err != nil {
		return err
	}
	for _, p := range edges {
		if err = addEdge(g, method, ids[p.u], ids[p.v]); err != nil {
			return err
		}
	}

	return nil
}
