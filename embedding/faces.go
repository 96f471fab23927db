// File: faces.go
// Role: Face enumeration, boundary management and rotation-neighbor queries.
// Determinism:
//   - Faces() is ascending by FaceID; face walks start at the face's adjacent half-edge.

package embedding

import "fmt"

// face resolves f to a live arena index.
func (m *Embedding) face(f FaceID) (int, error) {
	i := int(f)
	if i < 0 || i >= len(m.faces) || !m.faces[i].live {
		return none, ErrFaceNotFound
	}

	return i, nil
}

// half resolves the half-edge u→v (first one in u's rotation).
func (m *Embedding) half(u, v string) (int, error) {
	ui, err := m.vertex(u)
	if err != nil {
		return none, fmt.Errorf("%q: %w", u, err)
	}
	vi, err := m.vertex(v)
	if err != nil {
		return none, fmt.Errorf("%q: %w", v, err)
	}
	h, err := m.findHalf(ui, vi)
	if err != nil {
		return none, err
	}
	if h == none {
		return none, fmt.Errorf("no edge %s-%s: %w", u, v, ErrEdgeNotFound)
	}

	return h, nil
}

// Faces returns the live face IDs in ascending order.
func (m *Embedding) Faces() []FaceID {
	out := make([]FaceID, 0, m.liveFaces)
	for i := range m.faces {
		if m.faces[i].live {
			out = append(out, FaceID(i))
		}
	}

	return out
}

// FaceCount returns the number of live faces.
func (m *Embedding) FaceCount() int { return m.liveFaces }

// Face returns the face to which the directed edge u→v belongs.
func (m *Embedding) Face(u, v string) (FaceID, error) {
	h, err := m.half(u, v)
	if err != nil {
		return NoFace, fmt.Errorf("Face: %w", err)
	}

	return FaceID(m.halves[h].face), nil
}

// FaceEdges returns the directed boundary walk of f, starting at its
// adjacent half-edge and closing back to it.
// Complexity: O(|f|).
func (m *Embedding) FaceEdges(f FaceID) ([]DirectedEdge, error) {
	i, err := m.face(f)
	if err != nil {
		return nil, fmt.Errorf("FaceEdges: %d: %w", f, err)
	}
	walk, err := m.faceWalk(i)
	if err != nil {
		return nil, fmt.Errorf("FaceEdges: %w", err)
	}
	out := make([]DirectedEdge, len(walk))
	for k, h := range walk {
		out[k] = m.directed(h)
	}

	return out, nil
}

// FaceVertices returns the origins along the boundary walk of f.
// A vertex appears once per visit, so cut vertices may repeat.
func (m *Embedding) FaceVertices(f FaceID) ([]string, error) {
	edges, err := m.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(edges))
	for k, e := range edges {
		out[k] = e.Source
	}

	return out, nil
}

// faceWalk returns the half-edges of face i in next order.
func (m *Embedding) faceWalk(i int) ([]int, error) {
	start := m.faces[i].adjacent
	var out []int
	h := start
	for steps := 0; ; steps++ {
		if steps > m.walkBound() {
			return nil, fmt.Errorf("face %d: %w", i, ErrCorrupt)
		}
		if m.halves[h].face != i {
			return nil, fmt.Errorf("face %d: half-edge on face %d: %w", i, m.halves[h].face, ErrCorrupt)
		}
		out = append(out, h)
		h = m.halves[h].next
		if h == start {
			return out, nil
		}
	}
}

// FacePayload returns the payload attached to f.
func (m *Embedding) FacePayload(f FaceID) (any, error) {
	i, err := m.face(f)
	if err != nil {
		return nil, fmt.Errorf("FacePayload: %d: %w", f, err)
	}

	return m.faces[i].payload, nil
}

// Boundary returns the unbounded outer face, if the embedding has faces.
func (m *Embedding) Boundary() (FaceID, bool) {
	if m.boundary == none {
		return NoFace, false
	}

	return FaceID(m.boundary), true
}

// IsBoundary reports whether f is the boundary face.
func (m *Embedding) IsBoundary(f FaceID) bool {
	return m.boundary != none && int(f) == m.boundary
}

// SetBoundary marks the face containing the directed edge u→v as boundary.
func (m *Embedding) SetBoundary(u, v string) error {
	h, err := m.half(u, v)
	if err != nil {
		return fmt.Errorf("SetBoundary: %w", err)
	}
	m.setBoundary(m.halves[h].face)

	return nil
}

func (m *Embedding) setBoundary(f int) {
	if m.boundary != none {
		m.faces[m.boundary].boundary = false
	}
	m.boundary = f
	m.faces[f].boundary = true
}

// NextVertex returns w such that v→w follows v→u in v's rotation: the
// rotation neighbor of u around v, i.e. the target of next(u→v).
func (m *Embedding) NextVertex(u, v string) (string, error) {
	h, err := m.half(u, v)
	if err != nil {
		return "", fmt.Errorf("NextVertex: %w", err)
	}

	return m.vertices[m.target(m.halves[h].next)].id, nil
}

// PrevVertex returns w such that v→w precedes v→u in v's rotation, i.e. the
// origin of prev(v→u).
func (m *Embedding) PrevVertex(u, v string) (string, error) {
	h, err := m.half(v, u)
	if err != nil {
		return "", fmt.Errorf("PrevVertex: %w", err)
	}

	return m.vertices[m.halves[m.halves[h].prev].origin].id, nil
}
