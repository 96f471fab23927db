// Package dfs defines types and options for the depth-first numbering pass,
// including cancellation and pre-/post-order hooks.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlath-planar/core"
)

var (
	// ErrGraphNil is returned when a nil source is passed to Number.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUnknownVertex indicates an edge endpoint missing from Vertices().
	ErrUnknownVertex = errors.New("dfs: edge endpoint is not a vertex")

	// ErrDuplicateVertex indicates a vertex listed twice by Vertices().
	ErrDuplicateVertex = errors.New("dfs: duplicate vertex")
)

// Preprocessor computes a depth-first numbering of a graph source.
// Number is the default implementation; collaborators may supply their own.
type Preprocessor func(g core.Source) (*Result, error)

// Option configures optional behavior of Number.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the numbering pass.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled once per discovered vertex.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts the pass with that error.
	OnVisit func(id string, number int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order). Returning an error aborts the pass.
	OnExit func(id string) error
}

// DefaultOptions returns DFSOptions with a background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
		OnExit:  nil,
	}
}

// WithContext returns an Option that sets the Context for the pass.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook receiving the discovery number.
func WithOnVisit(fn func(id string, number int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// Result captures a depth-first numbering of every vertex of a source
// (the whole forest, one tree per connected component).
type Result struct {
	// Order lists vertices by ascending discovery number: Order[Number[v]] == v.
	Order []string

	// Roots lists the root of every DFS tree, in discovery order.
	Roots []string

	// Number maps each vertex to its discovery number (0-based).
	Number map[string]int

	// LowPoint is the minimum discovery number reachable from the vertex's
	// subtree using tree edges down and at most one back edge. The tree edge
	// to the parent does not count.
	LowPoint map[string]int

	// LeastAncestor is the minimum discovery number reachable from the vertex
	// itself through a single back edge (or its parent via the tree edge).
	LeastAncestor map[string]int

	// Parent maps each vertex to its DFS parent; roots map to themselves.
	Parent map[string]string

	// ParentEdge maps each non-root vertex to the ID of its tree edge.
	ParentEdge map[string]string
}

// IsRoot reports whether id roots a DFS tree.
func (r *Result) IsRoot(id string) bool {
	return r.Parent[id] == id
}
