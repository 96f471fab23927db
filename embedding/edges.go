// File: edges.go
// Role: Edge insertion and removal with face split/merge bookkeeping.
// Invariants kept by every mutation:
//   - twin(twin(h)) == h, next/prev are inverse permutations,
//   - every next-cycle carries exactly one live face,
//   - leaving(v) is live for every vertex with edges.

package embedding

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	before     string
	after      string
	id         string
	payload    any
	hasPayload bool
}

// Before places the new edge immediately after source's incidence to v in
// source's rotation.
func Before(v string) EdgeOption {
	return func(c *edgeConfig) { c.before = v }
}

// After places the new edge immediately before target's incidence to v in
// target's rotation.
func After(v string) EdgeOption {
	return func(c *edgeConfig) { c.after = v }
}

// WithEdgeID uses id instead of a generated "e<N>" identifier.
func WithEdgeID(id string) EdgeOption {
	return func(c *edgeConfig) { c.id = id }
}

// WithPayload attaches p to the new edge; the edge factory is skipped.
func WithPayload(p any) EdgeOption {
	return func(c *edgeConfig) { c.payload, c.hasPayload = p, true }
}

// AddEdge inserts an undirected edge source–target and returns its ID.
//
// Placement:
//   - Before(b): right after source→b in source's rotation.
//   - After(a): right before target→a in target's rotation.
//   - Omitted positions pick the first wedge whose face is shared with the
//     other endpoint; between different components the edge goes just before
//     each endpoint's leaving edge.
//
// Faces:
//   - If both wedges lie on one face the face is split; the cycle running
//     before→source→target→after gets a new face from the face factory.
//   - If the endpoints lie in different components their faces merge and the
//     boundary face survives.
//
// Errors: ErrVertexNotFound, ErrEdgeNotFound (no incidence to before/after),
// ErrInvalidInsertion, ErrDuplicateEdge, ErrCorrupt.
// Complexity: O(deg(source) + deg(target) + size of the split face).
func (m *Embedding) AddEdge(source, target string, opts ...EdgeOption) (string, error) {
	const method = "AddEdge"
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Resolve endpoints and identity
	s, err := m.vertex(source)
	if err != nil {
		return "", fmt.Errorf("%s: source %q: %w", method, source, err)
	}
	t, err := m.vertex(target)
	if err != nil {
		return "", fmt.Errorf("%s: target %q: %w", method, target, err)
	}
	if _, taken := m.edgeIndex[cfg.id]; taken && cfg.id != "" {
		return "", fmt.Errorf("%s: %q: %w", method, cfg.id, ErrDuplicateEdge)
	}

	// 2. Locate insertion wedges before touching the arena
	var a, b int
	if s == t {
		a, err = m.loopWedge(s, cfg)
	} else {
		a, b, err = m.wedges(s, t, cfg)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %s-%s: %w", method, source, target, err)
	}

	// 3. Allocate records
	id := cfg.id
	if id == "" {
		id = m.generateEdgeID()
	}
	e := len(m.edges)
	m.edges = append(m.edges, edgeRec{id: id, live: true})
	m.edgeIndex[id] = e
	n, tn := m.newHalfPair(e, s, t)
	m.edges[e].half = n
	switch {
	case cfg.hasPayload:
		m.edges[e].payload = cfg.payload
	case m.edgeFactory != nil:
		m.edges[e].payload = m.edgeFactory(id, source, target)
	}

	// 4. Wire into the mesh
	if s == t {
		m.spliceLoop(a, n, tn)

		return id, nil
	}
	if err = m.splice(a, b, n, tn); err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}

	return id, nil
}

// incidence returns the first half-edge v→w in v's rotation.
func (m *Embedding) incidence(v int, w string) (int, error) {
	wi, err := m.vertex(w)
	if err != nil {
		return none, fmt.Errorf("position %q: %w", w, err)
	}
	h, err := m.findHalf(v, wi)
	if err != nil {
		return none, err
	}
	if h == none {
		return none, fmt.Errorf("no edge %s-%s: %w", m.vertices[v].id, w, ErrEdgeNotFound)
	}

	return h, nil
}

// wedges picks the half-edge a ending at s after which s→t is linked, and
// the half-edge b leaving t that t→s precedes. none means isolated endpoint.
func (m *Embedding) wedges(s, t int, cfg edgeConfig) (int, int, error) {
	a, b := none, none
	if cfg.before != "" {
		h, err := m.incidence(s, cfg.before)
		if err != nil {
			return none, none, err
		}
		a = m.halves[h].twin
	}
	if cfg.after != "" {
		h, err := m.incidence(t, cfg.after)
		if err != nil {
			return none, none, err
		}
		b = h
	}

	sRot, err := m.rotation(s)
	if err != nil {
		return none, none, err
	}
	tRot, err := m.rotation(t)
	if err != nil {
		return none, none, err
	}

	// 1. Fill the unconstrained side(s) by face matching
	switch {
	case len(sRot) == 0 || len(tRot) == 0:
		if a == none && len(sRot) > 0 {
			a = m.halves[sRot[0]].prev
		}
		if b == none && len(tRot) > 0 {
			b = tRot[0]
		}

		return a, b, nil
	case a != none && b == none:
		b = m.firstOnFace(tRot, m.halves[a].face)
	case a == none && b != none:
		if h := m.firstOnFace(sRot, m.halves[b].face); h != none {
			a = m.halves[h].prev
		}
	case a == none && b == none:
		faceOfT := make(map[int]int, len(tRot))
		for i := len(tRot) - 1; i >= 0; i-- {
			faceOfT[m.halves[tRot[i]].face] = tRot[i]
		}
		for _, h := range sRot {
			if ht, ok := faceOfT[m.halves[h].face]; ok {
				a, b = m.halves[h].prev, ht

				break
			}
		}
	}
	if a == none {
		a = m.halves[sRot[0]].prev
	}
	if b == none {
		b = tRot[0]
	}

	// 2. Different faces are only legal across components
	if m.halves[a].face != m.halves[b].face {
		joined, err := m.connected(s, t)
		if err != nil {
			return none, none, err
		}
		if joined {
			return none, none, ErrInvalidInsertion
		}
	}

	return a, b, nil
}

// firstOnFace returns the first half-edge of rot lying on face f, or none.
func (m *Embedding) firstOnFace(rot []int, f int) int {
	for _, h := range rot {
		if m.halves[h].face == f {
			return h
		}
	}

	return none
}

// loopWedge picks the half-edge after which a self-loop at s is inserted.
func (m *Embedding) loopWedge(s int, cfg edgeConfig) (int, error) {
	if cfg.before != "" {
		h, err := m.incidence(s, cfg.before)
		if err != nil {
			return none, err
		}

		return m.halves[h].twin, nil
	}
	if l := m.vertices[s].leaving; l != none {
		return m.halves[l].prev, nil
	}

	return none, nil
}

// connected reports whether s and t share a component.
func (m *Embedding) connected(s, t int) (bool, error) {
	seen := map[int]bool{s: true}
	queue := linkedlistqueue.New()
	queue.Enqueue(s)
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		rot, err := m.rotation(item.(int))
		if err != nil {
			return false, err
		}
		for _, h := range rot {
			w := m.target(h)
			if w == t {
				return true, nil
			}
			if !seen[w] {
				seen[w] = true
				queue.Enqueue(w)
			}
		}
	}

	return false, nil
}

// splice links the half pair n (s→t), tn (t→s) after a and before b.
func (m *Embedding) splice(a, b, n, tn int) error {
	s, t := m.halves[n].origin, m.halves[tn].origin

	switch {
	case a == none && b == none:
		m.link(n, tn)
		m.link(tn, n)
		f := m.newFace(n)
		m.halves[n].face, m.halves[tn].face = f, f
		m.vertices[s].leaving, m.vertices[t].leaving = n, tn

		return nil
	case a == none:
		bPrev := m.halves[b].prev
		m.link(bPrev, tn)
		m.link(tn, n)
		m.link(n, b)
		f := m.halves[b].face
		m.halves[n].face, m.halves[tn].face = f, f
		m.vertices[s].leaving = n

		return nil
	case b == none:
		aNext := m.halves[a].next
		m.link(a, n)
		m.link(n, tn)
		m.link(tn, aNext)
		f := m.halves[a].face
		m.halves[n].face, m.halves[tn].face = f, f
		m.vertices[t].leaving = tn

		return nil
	}

	aNext, bPrev := m.halves[a].next, m.halves[b].prev
	fa, fb := m.halves[a].face, m.halves[b].face
	m.link(a, n)
	m.link(n, b)
	m.link(bPrev, tn)
	m.link(tn, aNext)

	if fa == fb {
		// split: a→n→b… becomes the new face, tn stays on the old one
		m.halves[tn].face = fa
		m.faces[fa].adjacent = tn

		return m.relabel(n, m.newFace(n))
	}

	// merge two components' faces, the boundary one survives
	keep, drop := fa, fb
	if m.faces[fb].boundary {
		keep, drop = fb, fa
	}
	m.faces[keep].adjacent = n
	if err := m.relabel(n, keep); err != nil {
		return err
	}
	m.killFace(drop)

	return nil
}

// spliceLoop links a self-loop pair after a; tn bounds a new empty face.
func (m *Embedding) spliceLoop(a, n, tn int) {
	s := m.halves[n].origin
	m.link(tn, tn)
	if a == none {
		m.link(n, n)
		m.halves[n].face = m.newFace(n)
		m.vertices[s].leaving = n
	} else {
		aNext := m.halves[a].next
		m.link(a, n)
		m.link(n, aNext)
		m.halves[n].face = m.halves[a].face
	}
	m.halves[tn].face = m.newFace(tn)
}

// relabel assigns face f to every half-edge on start's cycle.
func (m *Embedding) relabel(start, f int) error {
	h := start
	for steps := 0; ; steps++ {
		if steps > m.walkBound() {
			return fmt.Errorf("relabel face %d: %w", f, ErrCorrupt)
		}
		m.halves[h].face = f
		h = m.halves[h].next
		if h == start {
			return nil
		}
	}
}

// RemoveEdge deletes edge id. Faces on both sides merge (the boundary face
// survives); a face split by removing a bridge gets a new face record;
// endpoints left without edges are destroyed.
// Complexity: O(size of the affected faces).
func (m *Embedding) RemoveEdge(id string) error {
	e, ok := m.edgeIndex[id]
	if !ok {
		return fmt.Errorf("RemoveEdge: %q: %w", id, ErrEdgeNotFound)
	}
	if err := m.removeEdge(e); err != nil {
		return fmt.Errorf("RemoveEdge: %q: %w", id, err)
	}

	return nil
}

func (m *Embedding) removeEdge(e int) error {
	n := m.edges[e].half
	tn := m.halves[n].twin
	s, t := m.halves[n].origin, m.halves[tn].origin
	removed := func(h int) bool { return h == n || h == tn }

	// resolve skips removed halves in rotation order using the old links.
	resolve := func(h int) int {
		for i := 0; i < 4 && h != none && removed(h); i++ {
			h = m.aroundNext(h)
		}
		if removed(h) {
			return none
		}

		return h
	}

	// 1. Snapshot the neighborhood
	pn, ptn := m.halves[n].prev, m.halves[tn].prev
	fn, ftn := m.halves[n].face, m.halves[tn].face
	var starts []int
	for _, h := range [...]int{pn, ptn, m.halves[n].next, m.halves[tn].next} {
		if !removed(h) {
			starts = append(starts, h)
		}
	}
	leaveS, leaveT := m.vertices[s].leaving, m.vertices[t].leaving
	if removed(leaveS) {
		leaveS = resolve(leaveS)
	}
	if removed(leaveT) {
		leaveT = resolve(leaveT)
	}

	// 2. Relink around the removed pair
	var relinks [2][2]int
	cnt := 0
	for _, h := range [...]int{pn, ptn} {
		if !removed(h) {
			relinks[cnt] = [2]int{h, resolve(m.halves[h].next)}
			cnt++
		}
	}
	for i := 0; i < cnt; i++ {
		m.link(relinks[i][0], relinks[i][1])
	}

	// 3. Drop the records
	m.halves[n].origin, m.halves[tn].origin = none, none
	m.liveHalves -= 2
	m.edges[e].live = false
	delete(m.edgeIndex, m.edges[e].id)
	m.vertices[s].leaving = leaveS
	m.vertices[t].leaving = leaveT

	// 4. Repair faces
	if fn != ftn {
		keep, drop := fn, ftn
		if m.faces[ftn].boundary {
			keep, drop = ftn, fn
		}
		if len(starts) == 0 {
			m.killFace(fn)
			m.killFace(ftn)
		} else {
			m.faces[keep].adjacent = starts[0]
			if err := m.relabel(starts[0], keep); err != nil {
				return err
			}
			m.killFace(drop)
		}
	} else if err := m.resplit(fn, starts); err != nil {
		return err
	}

	// 5. Destroy endpoints left without edges
	if leaveS == none && m.vertices[s].live {
		m.destroyVertex(s)
	}
	if leaveT == none && m.vertices[t].live {
		m.destroyVertex(t)
	}

	return nil
}

// resplit distributes the cycles through starts after removing a bridge of
// face f: the first cycle keeps f, a second one gets a new face.
func (m *Embedding) resplit(f int, starts []int) error {
	seen := make(map[int]bool)
	var cycles []int
	for _, start := range starts {
		if seen[start] {
			continue
		}
		cycles = append(cycles, start)
		h := start
		for steps := 0; ; steps++ {
			if steps > m.walkBound() {
				return fmt.Errorf("resplit face %d: %w", f, ErrCorrupt)
			}
			seen[h] = true
			h = m.halves[h].next
			if h == start {
				break
			}
		}
	}

	switch len(cycles) {
	case 0:
		m.killFace(f)
	case 1:
		m.faces[f].adjacent = cycles[0]
	default:
		m.faces[f].adjacent = cycles[0]
		for _, c := range cycles[1:] {
			if err := m.relabel(c, m.newFace(c)); err != nil {
				return err
			}
		}
	}

	return nil
}

// HasEdge reports whether id is a live edge.
func (m *Embedding) HasEdge(id string) bool {
	_, ok := m.edgeIndex[id]

	return ok
}

// Endpoints returns the edge record for id.
func (m *Embedding) Endpoints(id string) (Edge, error) {
	e, ok := m.edgeIndex[id]
	if !ok {
		return Edge{}, fmt.Errorf("Endpoints: %q: %w", id, ErrEdgeNotFound)
	}

	return m.edgeOf(e), nil
}

func (m *Embedding) edgeOf(e int) Edge {
	h := m.edges[e].half

	return Edge{
		ID:     m.edges[e].id,
		Source: m.vertices[m.halves[h].origin].id,
		Target: m.vertices[m.target(h)].id,
	}
}

// Edges returns the live edges in creation order.
func (m *Embedding) Edges() []Edge {
	out := make([]Edge, 0, len(m.edgeIndex))
	for e := range m.edges {
		if m.edges[e].live {
			out = append(out, m.edgeOf(e))
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
func (m *Embedding) EdgeCount() int { return len(m.edgeIndex) }

// EdgePayload returns the payload attached to edge id.
func (m *Embedding) EdgePayload(id string) (any, error) {
	e, ok := m.edgeIndex[id]
	if !ok {
		return nil, fmt.Errorf("EdgePayload: %q: %w", id, ErrEdgeNotFound)
	}

	return m.edges[e].payload, nil
}
