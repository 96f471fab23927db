// File: rotation.go
// Role: Build an Embedding from a rotation system and verify mesh invariants.

package embedding

import "fmt"

// FromRotation builds an Embedding from a rotation system.
//
// rotation[v] lists the IDs of the edges around v in cyclic order; a
// self-loop appears twice (its first occurrence is the loop's forward end).
// Vertices are created in the given order, followed by any edge endpoint not
// listed. Faces are the cycles of next(twin(e)) = successor of e; the first
// face discovered in edge order becomes the boundary.
//
// Errors: ErrInvalidRotation when an edge end is missing, repeated or foreign.
// Complexity: O(V + E).
func FromRotation(vertices []string, edges []Edge, rotation map[string][]string, opts ...Option) (*Embedding, error) {
	const method = "FromRotation"
	m := New(opts...)

	// 1. Vertices and edge records
	for _, v := range vertices {
		if err := m.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	for _, e := range edges {
		if e.ID == "" {
			e.ID = m.generateEdgeID()
		}
		if _, dup := m.edgeIndex[e.ID]; dup {
			return nil, fmt.Errorf("%s: %q: %w", method, e.ID, ErrDuplicateEdge)
		}
		for _, v := range [...]string{e.Source, e.Target} {
			if err := m.AddVertex(v); err != nil {
				return nil, fmt.Errorf("%s: edge %q: %w", method, e.ID, err)
			}
		}
		idx := len(m.edges)
		m.edges = append(m.edges, edgeRec{id: e.ID, live: true})
		m.edgeIndex[e.ID] = idx
		n, _ := m.newHalfPair(idx, m.vertexIndex[e.Source], m.vertexIndex[e.Target])
		m.edges[idx].half = n
		if m.edgeFactory != nil {
			m.edges[idx].payload = m.edgeFactory(e.ID, e.Source, e.Target)
		}
	}

	// 2. Resolve every rotation slot to a half-edge
	used := make([]bool, len(m.halves))
	for v := range m.vertices {
		id := m.vertices[v].id
		slots := rotation[id]
		if len(slots) == 0 {
			continue
		}
		hs := make([]int, len(slots))
		for i, eid := range slots {
			h, err := m.slotHalf(v, eid, used)
			if err != nil {
				return nil, fmt.Errorf("%s: vertex %q: %w", method, id, err)
			}
			hs[i] = h
		}
		for i, h := range hs {
			m.link(m.halves[h].twin, hs[(i+1)%len(hs)])
		}
		m.vertices[v].leaving = hs[0]
	}
	for h, ok := range used {
		if !ok {
			e := m.edges[m.halves[h].edge]

			return nil, fmt.Errorf("%s: edge %q missing at %q: %w",
				method, e.id, m.vertices[m.halves[h].origin].id, ErrInvalidRotation)
		}
	}

	// 3. Faces are the next-cycles
	for h := range m.halves {
		if m.halves[h].face != none {
			continue
		}
		if err := m.relabel(h, m.newFace(h)); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return m, nil
}

// slotHalf maps one rotation slot of vertex v to its unused half-edge.
func (m *Embedding) slotHalf(v int, eid string, used []bool) (int, error) {
	e, ok := m.edgeIndex[eid]
	if !ok {
		return none, fmt.Errorf("%q: %w", eid, ErrEdgeNotFound)
	}
	n := m.edges[e].half
	for _, h := range [...]int{n, m.halves[n].twin} {
		if m.halves[h].origin == v && !used[h] {
			used[h] = true

			return h, nil
		}
	}

	return none, fmt.Errorf("edge %q listed at a foreign or exhausted end: %w", eid, ErrInvalidRotation)
}

// Validate checks every structural invariant of the mesh:
//   - twin(twin(h)) == h and next/prev are inverse,
//   - every face walk closes and carries only its own face,
//   - face walks cover every half-edge exactly once,
//   - every rotation closes after deg(v) steps at half-edges leaving v,
//   - exactly one live face is the boundary.
//
// Complexity: O(V + E + F).
func (m *Embedding) Validate() error {
	const method = "Validate"
	live := 0
	for h := range m.halves {
		he := m.halves[h]
		if he.origin == none {
			continue
		}
		live++
		switch {
		case m.halves[he.twin].twin != h:
			return fmt.Errorf("%s: twin of %d: %w", method, h, ErrCorrupt)
		case he.next == none || m.halves[he.next].prev != h:
			return fmt.Errorf("%s: next/prev of %d: %w", method, h, ErrCorrupt)
		case he.face == none || !m.faces[he.face].live:
			return fmt.Errorf("%s: dead face on %d: %w", method, h, ErrCorrupt)
		case !m.vertices[he.origin].live:
			return fmt.Errorf("%s: dead origin on %d: %w", method, h, ErrCorrupt)
		}
	}
	if live != m.liveHalves {
		return fmt.Errorf("%s: live half-edge count: %w", method, ErrCorrupt)
	}

	covered, boundaries := 0, 0
	for f := range m.faces {
		if !m.faces[f].live {
			continue
		}
		if m.faces[f].boundary {
			boundaries++
		}
		walk, err := m.faceWalk(f)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		covered += len(walk)
	}
	if covered != live {
		return fmt.Errorf("%s: faces cover %d of %d half-edges: %w", method, covered, live, ErrCorrupt)
	}
	if m.liveFaces > 0 && boundaries != 1 {
		return fmt.Errorf("%s: %d boundary faces: %w", method, boundaries, ErrCorrupt)
	}

	degrees := 0
	for v := range m.vertices {
		if !m.vertices[v].live {
			continue
		}
		rot, err := m.rotation(v)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		for _, h := range rot {
			if m.halves[h].origin != v {
				return fmt.Errorf("%s: rotation of %q leaves the vertex: %w", method, m.vertices[v].id, ErrCorrupt)
			}
		}
		degrees += len(rot)
	}
	if degrees != live {
		return fmt.Errorf("%s: rotations cover %d of %d half-edges: %w", method, degrees, live, ErrCorrupt)
	}

	return nil
}

// Components returns the number of connected components, isolated vertices
// included.
func (m *Embedding) Components() int {
	seen := make([]bool, len(m.vertices))
	count := 0
	for v := range m.vertices {
		if !m.vertices[v].live || seen[v] {
			continue
		}
		count++
		seen[v] = true
		stack := []int{v}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			rot, _ := m.rotation(x)
			for _, h := range rot {
				if w := m.target(h); !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	return count
}
