// SPDX-License-Identifier: MIT
// Package: lvlath-planar/builder
//
// api.go - thin public entry-point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give identical graphs
//     (same vertex order, same edge order, same edge IDs "e1","e2",...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-planar/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Fixture builds a single named topology with default graph options. It is the
// lookup used by command-line tools: names are the lower-case constructor
// names ("complete", "bipartite", "cycle", "path", "star", "wheel", "grid",
// "tetrahedron", "cube", "octahedron", "dodecahedron", "icosahedron",
// "petersen", "random"). Parameters n and m are read as each constructor
// needs them (m is the second side, the column count, or p in percent).
//
// Errors: ErrUnknownFixture, or the constructor's own sentinel.
func Fixture(name string, n, m int, bopts ...BuilderOption) (*core.Graph, error) {
	var con Constructor
	switch name {
	case "complete":
		con = Complete(n)
	case "bipartite":
		con = CompleteBipartite(n, m)
	case "cycle":
		con = Cycle(n)
	case "path":
		con = Path(n)
	case "star":
		con = Star(n)
	case "wheel":
		con = Wheel(n)
	case "grid":
		con = Grid(n, m)
	case "petersen":
		con = Petersen()
	case "random":
		con = RandomSparse(n, float64(m)/100)
	default:
		solid, ok := platonicByName[name]
		if !ok {
			return nil, fmt.Errorf("Fixture: %q: %w", name, ErrUnknownFixture)
		}
		con = PlatonicSolid(solid)
	}

	return BuildGraph(nil, bopts, con)
}
