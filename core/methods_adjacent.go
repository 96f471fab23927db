// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/NeighborIDs/Degree.
// Determinism:
//   - All results follow edge insertion order.

package core

// Neighbors returns the edges incident to id in insertion order.
// A self-loop is listed once.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.position[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(g.incident[id]))
	copy(out, g.incident[id])

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, in order of first
// incidence. A self-loop contributes id itself.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		other := e.Other(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}

	return out, nil
}

// Degree returns the number of edge ends at id; a self-loop counts twice.
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	deg := 0
	for _, e := range edges {
		deg++
		if e.IsLoop() {
			deg++
		}
	}

	return deg, nil
}
