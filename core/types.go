// Package core defines the undirected multigraph used as the graph source of
// the planarity engine, together with the read-only Source contract every
// consumer in this module depends on.
//
// All mutating APIs are guarded by a single sync.RWMutex, so a Graph may be
// built from several goroutines. Consumers (dfs, planarity) only read through
// Source and never mutate.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Source is the read-only view of a graph consumed by the DFS preprocessor and
// the planarity engine.
//
// Contract:
//   - Vertices returns every vertex ID exactly once, in a stable order.
//   - Edges returns every edge exactly once, in a stable order; both endpoints
//     of each edge appear in Vertices.
//   - Neither slice is mutated by consumers.
type Source interface {
	Vertices() []string
	Edges() []*Edge
}

// Edge is an undirected edge between From and To.
// From == To denotes a self-loop.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string
}

// Other returns the endpoint of e opposite to id.
// For a self-loop Other returns id itself.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// IsLoop reports whether e is a self-loop.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory undirected multigraph.
//
// Vertices and edges keep their insertion order, which makes every traversal
// built on top of Graph (and therefore every DFS numbering and every embedding)
// reproducible for a fixed construction sequence.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64            // monotonic edge ID generator ("e1", "e2", ...)
	order      []string          // vertex IDs in insertion order
	position   map[string]int    // vertex ID → index in order
	edges      map[string]*Edge  // edge ID → Edge
	edgeOrder  []string          // edge IDs in insertion order (may contain removed IDs)
	incident   map[string][]*Edge // vertex ID → incident edges in insertion order (loops once)
}

// NewGraph creates an empty Graph. By default loops and multi-edges are rejected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		position: make(map[string]int),
		edges:    make(map[string]*Edge),
		incident: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
