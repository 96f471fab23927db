// File: vertices.go
// Role: Vertex lifecycle and rotation queries.
// Determinism:
//   - Vertices() follows creation order; rotations start at the leaving half-edge.

package embedding

import "fmt"

// AddVertex inserts an isolated vertex. Re-adding an existing ID is a no-op.
// Complexity: O(1).
func (m *Embedding) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := m.vertexIndex[id]; ok {
		return nil
	}
	m.addVertex(id)

	return nil
}

func (m *Embedding) addVertex(id string) int {
	v := len(m.vertices)
	m.vertices = append(m.vertices, vertexRec{id: id, leaving: none, live: true})
	m.vertexIndex[id] = v
	if m.vertexFactory != nil {
		m.vertices[v].payload = m.vertexFactory(id)
	}

	return v
}

// vertex resolves id to its arena index.
func (m *Embedding) vertex(id string) (int, error) {
	if id == "" {
		return none, ErrEmptyVertexID
	}
	v, ok := m.vertexIndex[id]
	if !ok {
		return none, ErrVertexNotFound
	}

	return v, nil
}

// destroyVertex drops a vertex whose last incident edge disappeared.
func (m *Embedding) destroyVertex(v int) {
	m.vertices[v].live = false
	m.vertices[v].leaving = none
	delete(m.vertexIndex, m.vertices[v].id)
}

// HasVertex reports whether id is a live vertex.
func (m *Embedding) HasVertex(id string) bool {
	_, ok := m.vertexIndex[id]

	return ok
}

// Vertices returns the live vertex IDs in creation order.
func (m *Embedding) Vertices() []string {
	out := make([]string, 0, len(m.vertexIndex))
	for i := range m.vertices {
		if m.vertices[i].live {
			out = append(out, m.vertices[i].id)
		}
	}

	return out
}

// VertexCount returns the number of live vertices.
func (m *Embedding) VertexCount() int { return len(m.vertexIndex) }

// VertexPayload returns the payload attached to id.
func (m *Embedding) VertexPayload(id string) (any, error) {
	v, err := m.vertex(id)
	if err != nil {
		return nil, fmt.Errorf("VertexPayload: %q: %w", id, err)
	}

	return m.vertices[v].payload, nil
}

// rotation returns the half-edges leaving v in rotation order, starting at
// the leaving half-edge. A self-loop contributes both of its halves.
func (m *Embedding) rotation(v int) ([]int, error) {
	start := m.vertices[v].leaving
	if start == none {
		return nil, nil
	}
	var out []int
	h := start
	for steps := 0; ; steps++ {
		if steps > m.walkBound() {
			return nil, fmt.Errorf("rotation of %q: %w", m.vertices[v].id, ErrCorrupt)
		}
		out = append(out, h)
		h = m.aroundNext(h)
		if h == start {
			return out, nil
		}
	}
}

// findHalf returns the first half-edge u→w in u's rotation, or none.
func (m *Embedding) findHalf(u, w int) (int, error) {
	rot, err := m.rotation(u)
	if err != nil {
		return none, err
	}
	for _, h := range rot {
		if m.target(h) == w {
			return h, nil
		}
	}

	return none, nil
}

// Degree returns the number of edge ends at id (a self-loop counts twice).
func (m *Embedding) Degree(id string) (int, error) {
	v, err := m.vertex(id)
	if err != nil {
		return 0, fmt.Errorf("Degree: %q: %w", id, err)
	}
	rot, err := m.rotation(v)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(rot), nil
}

// Incidences returns the rotation of id as (edge, neighbor, direction) slots.
// Complexity: O(deg(id)).
func (m *Embedding) Incidences(id string) ([]Incidence, error) {
	v, err := m.vertex(id)
	if err != nil {
		return nil, fmt.Errorf("Incidences: %q: %w", id, err)
	}
	rot, err := m.rotation(v)
	if err != nil {
		return nil, fmt.Errorf("Incidences: %w", err)
	}
	out := make([]Incidence, len(rot))
	for i, h := range rot {
		out[i] = Incidence{
			Edge:     m.edges[m.halves[h].edge].id,
			Neighbor: m.vertices[m.target(h)].id,
			Forward:  m.isForward(h),
		}
	}

	return out, nil
}

// EdgesOf returns the IDs of the edges around id in rotation order.
// A self-loop is listed twice, once per end.
func (m *Embedding) EdgesOf(id string) ([]string, error) {
	inc, err := m.Incidences(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(inc))
	for i, in := range inc {
		out[i] = in.Edge
	}

	return out, nil
}

// Rotation returns the neighbors of id in rotation order.
func (m *Embedding) Rotation(id string) ([]string, error) {
	inc, err := m.Incidences(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(inc))
	for i, in := range inc {
		out[i] = in.Neighbor
	}

	return out, nil
}

// RemoveVertex removes id together with all incident edges.
// Neighbors left without edges are destroyed as well.
// Complexity: O(Σ face sizes touched).
func (m *Embedding) RemoveVertex(id string) error {
	v, err := m.vertex(id)
	if err != nil {
		return fmt.Errorf("RemoveVertex: %q: %w", id, err)
	}
	for m.vertices[v].live && m.vertices[v].leaving != none {
		h := m.vertices[v].leaving
		if err = m.removeEdge(m.halves[h].edge); err != nil {
			return fmt.Errorf("RemoveVertex: %q: %w", id, err)
		}
	}
	if m.vertices[v].live {
		m.destroyVertex(v)
	}

	return nil
}
