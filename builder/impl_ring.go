// SPDX-License-Identifier: MIT
// Package: lvlath-planar/builder
//
// impl_ring.go - Cycle(n), Path(n), Star(n) and Wheel(n).
//
// Contract:
//   - Ring vertices are cfg.idFn(0..k-1); hubs use the fixed ID "Center".
//   - Edges follow increasing index; Cycle closes with (n-1, 0).
//   - Every result is planar, so these serve as positive fixtures.
//
// Complexity: O(n) vertices and edges; O(1) extra space beyond the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-planar/core"
)

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
	minWheelNodes = 4 // outer cycle has n-1 ≥ 3 vertices

	// centerVertexID is the hub of Star and Wheel.
	centerVertexID = "Center"
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := range ids {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star: hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		leaves, err := addVertices(g, methodStar, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
