// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddVertex inserts a vertex if it does not exist yet. Re-adding is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.position[id]; ok {
		return
	}
	g.position[id] = len(g.order)
	g.order = append(g.order, id)
}

// HasVertex reports whether id exists. Empty IDs are never present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.position[id]

	return ok
}

// RemoveVertex deletes id and every incident edge.
//
// Steps:
//  1. Validate and lock.
//  2. Drop every incident edge from the catalog and from the neighbor's list.
//  3. Remove id from the ordering and re-index the tail.
//
// Complexity: O(V + deg(id)·deg(neighbor)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.position[id]
	if !ok {
		return ErrVertexNotFound
	}
	for _, e := range g.incident[id] {
		delete(g.edges, e.ID)
		if other := e.Other(id); other != id {
			g.incident[other] = dropEdge(g.incident[other], e.ID)
		}
	}
	delete(g.incident, id)

	g.order = append(g.order[:pos], g.order[pos+1:]...)
	delete(g.position, id)
	for i := pos; i < len(g.order); i++ {
		g.position[g.order[i]] = i
	}

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
