// Package traverse walks the faces of a finished planar embedding and reports
// them to a callback Visitor.
//
// What:
//
//   - BreadthFirst(m, vis): every face exactly once, spreading outward from
//     the boundary face across shared edges; each directed edge is reported
//     exactly once, as part of the face on its left.
//   - Canonical(m, vis): the faces of an internally triangulated embedding in
//     canonical vertex order; a triangle is reported once all three of its
//     vertices are settled and the boundary face comes last.
//   - CanonicalOrder(m): the canonical vertex order itself.
//
// Callback protocol:
//
//	BeginTraversal
//	  BeginFace(first)
//	    NextVertex(source) NextEdge(source→target)   // once per edge, from first around to first
//	  EndFace(first)
//	EndTraversal
//
// Any Visitor field may be nil; nil callbacks are skipped.
//
// Errors:
//
//	ErrNilEmbedding       // m is nil
//	ErrNotTriangulated    // Canonical on a non-triangulated embedding
//	embedding.ErrCorrupt  // a face walk did not close
//
// Complexity:
//
//   - BreadthFirst: O(V + E). Canonical: O(V + E).
package traverse
