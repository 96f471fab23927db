// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge and returns its generated ID.
// Missing endpoints are created on the fly.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Lock, ensure both endpoints exist.
//  3. Enforce the multi-edge constraint.
//  4. Generate the ID and link the edge into both incidence lists (loops once).
//
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.allowMulti {
		for _, e := range g.incident[from] {
			if e.Other(from) == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	e := &Edge{ID: g.newEdgeID(), From: from, To: to}
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.incident[from] = append(g.incident[from], e)
	if from != to {
		g.incident[to] = append(g.incident[to], e)
	}

	return e.ID, nil
}

// newEdgeID returns the next "e<N>" identifier. Caller holds the write lock.
func (g *Graph) newEdgeID() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 12)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// RemoveEdge deletes one edge.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(edgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, edgeID)
	g.incident[e.From] = dropEdge(g.incident[e.From], edgeID)
	if !e.IsLoop() {
		g.incident[e.To] = dropEdge(g.incident[e.To], edgeID)
	}

	return nil
}

// dropEdge removes edgeID from list preserving order.
func dropEdge(list []*Edge, edgeID string) []*Edge {
	for i, e := range list {
		if e.ID == edgeID {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

// HasEdge reports whether at least one edge joins from and to (in either direction).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.incident[from] {
		if e.Other(from) == to {
			return true
		}
	}

	return false
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all live edges in insertion order.
// Complexity: O(E) plus one compaction of the order log when removals happened.
func (g *Graph) Edges() []*Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.edgeOrder) != len(g.edges) {
		live := g.edgeOrder[:0]
		for _, id := range g.edgeOrder {
			if _, ok := g.edges[id]; ok {
				live = append(live, id)
			}
		}
		g.edgeOrder = live
	}
	out := make([]*Edge, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		out[i] = g.edges[id]
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
