// File: view.go
// Role: Immutable Source snapshots (explicit lists, edge-filtered views).
// Determinism:
//   - Views preserve the order of the Source they were taken from.
// AI-HINT (file):
//   - Views never mutate their input; they share *Edge values with it.

package core

// View is a fixed, read-only Source.
type View struct {
	vertices []string
	edges    []*Edge
}

// NewView wraps explicit vertex and edge lists as a Source.
// Endpoints missing from vertices are appended in edge order.
// Complexity: O(V + E).
func NewView(vertices []string, edges []*Edge) *View {
	seen := make(map[string]struct{}, len(vertices))
	vs := make([]string, 0, len(vertices))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		vs = append(vs, id)
	}
	for _, v := range vertices {
		add(v)
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}
	es := make([]*Edge, len(edges))
	copy(es, edges)

	return &View{vertices: vs, edges: es}
}

// EdgeInduced returns the subgraph of src formed by the edges accepted by keep
// and the vertices they touch, in src order.
// Complexity: O(V + E).
func EdgeInduced(src Source, keep func(*Edge) bool) *View {
	touched := make(map[string]struct{})
	var edges []*Edge
	for _, e := range src.Edges() {
		if !keep(e) {
			continue
		}
		edges = append(edges, e)
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
	}
	var vertices []string
	for _, v := range src.Vertices() {
		if _, ok := touched[v]; ok {
			vertices = append(vertices, v)
		}
	}

	return &View{vertices: vertices, edges: edges}
}

// Vertices implements Source.
func (v *View) Vertices() []string { return v.vertices }

// Edges implements Source.
func (v *View) Edges() []*Edge { return v.edges }
