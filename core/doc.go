// Package core provides the thread-safe undirected multigraph that feeds the
// planarity engine, and the Source contract all consumers read through.
//
// The Graph G = (V,E) supports:
//
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Sequential Edge.ID generation ("e1", "e2", …)
//   - A single sync.RWMutex guarding vertices, edges and incidence lists
//
// Why insertion order?
//
//	The Boyer-Myrvold test numbers vertices by a depth-first search. The
//	resulting embedding, and any Kuratowski witness, depend on that numbering.
//	Keeping Vertices(), Edges() and Neighbors() in insertion order makes every
//	downstream result reproducible for a fixed construction sequence.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(V + deg)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)†
//	RemoveEdge(edgeID string) error          // O(deg)
//	HasEdge(from, to string) bool            // O(deg)
//	GetEdge(edgeID string) (*Edge, error)    // O(1)
//
//	// Queries
//	Vertices() []string                  // insertion order
//	Edges() []*Edge                      // insertion order
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Degree(id string) (int, error)       // loops count twice
//
//	// Views
//	Clone() *Graph
//	NewView(vertices, edges) *View
//	EdgeInduced(src, keep) *View
//
//	† O(deg(from)) when multi-edges are disabled (parallel-edge check).
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
