// Package planarity implements the Boyer-Myrvold planarity test: a linear
// time decision of whether an undirected multigraph admits a planar
// embedding, with construction of that embedding on success and isolation
// of a Kuratowski subgraph on failure.
//
// What:
//
//   - Preprocessing: one depth-first numbering (dfs.Number by default) gives
//     discovery number, low-point, least-ancestor and parent edge. Every tree
//     edge is pre-embedded through face handles.
//   - Main loop, vertices in descending discovery order:
//   - Walkup(v): for each back edge (v,w) climb from w to v along external
//     faces and record the bicomponent roots on the way as pertinent.
//   - Walkdown(v): descend through pertinent roots, embed back edges, merge
//     bicomponents (flipping where the entry and exit sides disagree) and
//     short-circuit inactive stretches of the external face.
//   - Finalize: glue leftover child roots, resolve deferred flips in
//     discovery order and attach self-loops.
//   - Isolation (WithKuratowski): cases A-E around the blocked triple
//     (v, x, y) collect a candidate edge set, which is re-tested and then
//     minimized to an exact K5 or K3,3 subdivision.
//
// Key types:
//
//   - Tester: one engine run with a cached answer.
//   - Options / Option: WithKuratowski, WithListStorage, WithPreprocessor,
//     WithLogger.
//   - Kind: KindK5, KindK33, KindUnknown.
//
// Functions:
//
//	New(g, opts...) (*Tester, error)
//	(*Tester).IsPlanar() (bool, error)
//	(*Tester).EdgesOf(v), Rotation(), Embedding(opts...)
//	(*Tester).KuratowskiSubgraph(), Witness()
//	IsPlanar(g), Embed(g, opts...), Kuratowski(g), Classify(g, edgeIDs)
//
// Edge storage:
//
//	Face handles keep their edges in a concatenation tree with a lazy
//	reversal flag (O(1) flip and glue). WithListStorage swaps in a plain
//	doubly-linked list; answers are identical, the worst case is O(n²).
//
// Complexity:
//
//   - IsPlanar: Time O(V + E), Memory O(V + E).
//   - KuratowskiSubgraph: O(k · log E · (V + E)) for a witness of k edges.
//
// Errors:
//
//   - ErrNilGraph, ErrDuplicateVertex, ErrDuplicateEdge, ErrUnknownVertex,
//     ErrBadPreprocessing  invalid input to New
//   - ErrNotRun, ErrNotPlanar, ErrPlanar, ErrIsolationDisabled
//     query made in the wrong state
//   - ErrCorrupt           an internal walk exceeded its bound
//
// Non-planarity is a result (false, nil), never an error.
//
// Concurrency:
//
//	A Tester is single-threaded and not resumable after ErrCorrupt.
package planarity
