// File: methods_clone.go
// Role: Deep copy preserving flags, IDs and insertion order.

package core

// Clone returns an independent copy of g. Edge IDs are preserved and the
// clone continues generating IDs after the last one used by g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	edges := g.Edges() // compacts the order log under its own lock

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		order:      make([]string, len(g.order)),
		position:   make(map[string]int, len(g.position)),
		edges:      make(map[string]*Edge, len(edges)),
		edgeOrder:  make([]string, 0, len(edges)),
		incident:   make(map[string][]*Edge, len(g.incident)),
	}
	copy(out.order, g.order)
	for id, pos := range g.position {
		out.position[id] = pos
	}
	for _, e := range edges {
		if _, live := g.edges[e.ID]; !live {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To}
		out.edges[ne.ID] = ne
		out.edgeOrder = append(out.edgeOrder, ne.ID)
		out.incident[ne.From] = append(out.incident[ne.From], ne)
		if !ne.IsLoop() {
			out.incident[ne.To] = append(out.incident[ne.To], ne)
		}
	}

	return out
}
