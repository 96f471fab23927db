// Package dfs implements the depth-first numbering pass consumed by the
// planarity engine: discovery number, low-point, least-ancestor and parent
// edge for every vertex of an undirected multigraph.
//
// Key features:
//   - Number(g, opts...): forest traversal over every component
//   - Iterative walk with an explicit frame stack (no recursion depth limit)
//   - Parallel edges to the parent count as back edges; self-loops are ignored
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V + E) for the incidence lists and the frame stack.
//
// Errors:
//
//   - ErrGraphNil, ErrUnknownVertex, ErrDuplicateVertex.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath-planar/core"
)

// arc is one incidence of an edge at a vertex.
type arc struct {
	edge  string // edge ID
	other int    // opposite endpoint index
}

// frame is one activation of the iterative walk.
type frame struct {
	v    int // vertex index
	next int // next incidence to inspect
}

// dfsWalker encapsulates state during the numbering pass.
type dfsWalker struct {
	opts DFSOptions

	ids    []string // vertex index → ID
	adj    [][]arc  // vertex index → incidences in edge order
	num    []int    // discovery numbers, -1 = undiscovered
	low    []int
	least  []int
	parent []int
	pedge  []string
	order  []int
	roots  []int
	count  int
}

// Number performs a full depth-first traversal of g, starting a new tree at
// every still-undiscovered vertex in Vertices() order, and returns the
// numbering. Neighbors are explored in Edges() order.
func Number(g core.Source, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Index vertices and build incidence lists
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("dfs: Number: %q: %w", id, ErrDuplicateVertex)
		}
		index[id] = i
	}
	adj := make([][]arc, len(ids))
	for _, e := range g.Edges() {
		from, okFrom := index[e.From]
		to, okTo := index[e.To]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("dfs: Number: edge %s (%s-%s): %w", e.ID, e.From, e.To, ErrUnknownVertex)
		}
		if from == to {
			continue // self-loops never influence the numbering
		}
		adj[from] = append(adj[from], arc{edge: e.ID, other: to})
		adj[to] = append(adj[to], arc{edge: e.ID, other: from})
	}

	// 4. Walk every component
	w := newWalker(ids, adj, dopts)
	for v := range ids {
		if w.num[v] >= 0 {
			continue
		}
		if err := w.walk(v); err != nil {
			return nil, err
		}
	}

	return w.result(), nil
}

func newWalker(ids []string, adj [][]arc, opts DFSOptions) *dfsWalker {
	n := len(ids)
	w := &dfsWalker{
		opts:   opts,
		ids:    ids,
		adj:    adj,
		num:    make([]int, n),
		low:    make([]int, n),
		least:  make([]int, n),
		parent: make([]int, n),
		pedge:  make([]string, n),
		order:  make([]int, 0, n),
	}
	for i := range w.num {
		w.num[i] = -1
	}

	return w
}

// discover assigns the next discovery number to v.
func (w *dfsWalker) discover(v, parent int, via string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.num[v] = w.count
	w.low[v] = w.count
	w.least[v] = w.count
	w.parent[v] = parent
	w.pedge[v] = via
	w.order = append(w.order, v)
	if parent != v {
		w.least[v] = w.num[parent] // the tree edge reaches the parent directly
	}
	w.count++

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(w.ids[v], w.num[v]); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", w.ids[v], err)
		}
	}

	return nil
}

// walk explores the tree rooted at root with an explicit frame stack.
func (w *dfsWalker) walk(root int) error {
	w.roots = append(w.roots, root)
	if err := w.discover(root, root, ""); err != nil {
		return err
	}
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.v

		// 1. Advance over the incidences of v
		if top.next < len(w.adj[v]) {
			a := w.adj[v][top.next]
			top.next++

			switch {
			case w.num[a.other] < 0: // tree edge
				if err := w.discover(a.other, v, a.edge); err != nil {
					return err
				}
				stack = append(stack, frame{v: a.other})
			case a.edge == w.pedge[v]: // the tree edge back to the parent
			case w.num[a.other] < w.num[v]: // back edge to an ancestor
				if w.num[a.other] < w.low[v] {
					w.low[v] = w.num[a.other]
				}
				if w.num[a.other] < w.least[v] {
					w.least[v] = w.num[a.other]
				}
			}

			continue
		}

		// 2. Finish v and propagate its low-point to the parent
		stack = stack[:len(stack)-1]
		if p := w.parent[v]; p != v && w.low[v] < w.low[p] {
			w.low[p] = w.low[v]
		}
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(w.ids[v]); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", w.ids[v], err)
			}
		}
	}

	return nil
}

// result converts the dense arrays into the ID-keyed Result.
func (w *dfsWalker) result() *Result {
	n := len(w.ids)
	res := &Result{
		Order:         make([]string, n),
		Roots:         make([]string, len(w.roots)),
		Number:        make(map[string]int, n),
		LowPoint:      make(map[string]int, n),
		LeastAncestor: make(map[string]int, n),
		Parent:        make(map[string]string, n),
		ParentEdge:    make(map[string]string, n),
	}
	for i, v := range w.order {
		res.Order[i] = w.ids[v]
	}
	for i, r := range w.roots {
		res.Roots[i] = w.ids[r]
	}
	for v, id := range w.ids {
		res.Number[id] = w.num[v]
		res.LowPoint[id] = w.low[v]
		res.LeastAncestor[id] = w.least[v]
		res.Parent[id] = w.ids[w.parent[v]]
		if w.parent[v] != v {
			res.ParentEdge[id] = w.pedge[v]
		}
	}

	return res
}
