// Package builder provides deterministic graph fixtures for the planarity
// packages: classic topologies built into a core.Graph through composable
// Constructor closures and functional options.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph and apply constructors in order.
//     – Fixture(name, n, m, bopts...):     name-based lookup used by cmd/planarity.
//   - Constructors:
//     – Complete(n), CompleteBipartite(n1, n2)  K5 and K3,3 are the Kuratowski graphs.
//     – Cycle(n), Path(n), Star(n), Wheel(n)     planar rings with hub "Center".
//     – Grid(rows, cols)                         planar, vertex IDs "r,c".
//     – PlatonicSolid(name)                      the five 3-connected planar solids.
//     – Petersen()                               non-planar, K3,3 subdivision only.
//     – RandomSparse(n, p)                       seeded G(n, p).
//   - Options:
//     – WithIDScheme, WithSymbNumb, WithSymbolIDs, WithExcelColumnIDs.
//     – WithSeed, WithRand.
//     – WithPartitionPrefix (bipartite side labels, defaults "L"/"R").
//
// Guarantees:
//
//   - Deterministic: equal inputs, options and seed give the same vertex
//     order, edge order and edge IDs.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrOptionViolation,
//     ErrConstructFailed) wrapped with method context; they never panic.
//     Option constructors panic on nil inputs.
package builder
