// Package dfs implements the depth-first numbering pass used as preprocessing
// by the Boyer-Myrvold planarity test.
//
// What:
//
//   - Number(g): a forest traversal of an undirected multigraph that assigns
//     every vertex its discovery number, low-point, least-ancestor, parent
//     vertex and parent (tree) edge.
//
// Why:
//
//   - The planarity engine processes vertices in descending discovery order
//     and decides external activity from low-points and least-ancestors.
//   - The pass is generic: any collaborator needing biconnectivity data can
//     reuse it, and the engine accepts any Preprocessor with the same contract.
//
// Definitions (for a vertex v with discovery number num(v)):
//
//   - LeastAncestor(v) = min(num(parent(v)), num(w) for every back edge v-w).
//   - LowPoint(v)      = min(num(v), num(w) for every back edge v-w, LowPoint(c) for every child c).
//
// Determinism:
//
//   - Roots are taken in Vertices() order; neighbors in Edges() order.
//
// Complexity:
//
//   - Time O(V + E), Space O(V + E).
package dfs
