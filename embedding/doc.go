// Package embedding implements the Embedding Store: a half-edge mesh
// (doubly-connected edge list) that holds one planar embedding of a graph,
// i.e. a rotation system plus the faces it induces.
//
// What:
//
//   - Vertices, half-edges and faces live in arenas (slices) and refer to each
//     other by index, so the cyclic vertex↔half-edge↔face references never
//     become Go pointer cycles.
//   - Every undirected edge owns two half-edges (twins). A half-edge knows its
//     origin, twin, next/prev around its face and its face.
//   - The rotation successor of a half-edge e leaving v is next(twin(e)).
//   - Exactly one face is the boundary (unbounded) face while faces exist.
//
// Operations:
//
//	AddVertex(id)                                  // O(1)
//	AddEdge(s, t, Before(b), After(a), ...)        // split or merge faces
//	RemoveEdge(id), RemoveVertex(id)               // merge or split faces
//	NextVertex(u, v), PrevVertex(u, v)             // rotation neighbors at v
//	Boundary(), SetBoundary(u, v)
//	Faces(), Face(u, v), FaceEdges(f), FaceVertices(f)
//	EdgesOf(v), Rotation(v), Incidences(v), Degree(v)
//	FromRotation(vertices, edges, rotation)        // build from a rotation system
//	Validate()                                     // full invariant check
//
// Lifetime rules:
//
//   - A vertex is destroyed when its last incident edge is removed. Vertices
//     created by AddVertex and never connected stay until RemoveVertex.
//   - A face disappears when its last half-edge does; when two faces merge the
//     boundary face survives.
//   - Arena slots are never reused, so a FaceID never aliases a newer face.
//
// Errors:
//
//	ErrVertexNotFound, ErrEdgeNotFound, ErrFaceNotFound   // element not found
//	ErrInvalidInsertion                                   // insertion would break planarity
//	ErrCorrupt                                            // walk exceeded its bound
//	ErrEmptyVertexID, ErrDuplicateEdge, ErrInvalidRotation
//
// Concurrency:
//
//	An Embedding is not synchronized; callers serialize mutation.
package embedding
