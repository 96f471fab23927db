// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Arena records, sentinel errors, options and the Embedding constructor.
// Policy:
//   - Records reference each other by arena index, never by pointer.
//   - Arena slots are never reused; a removed record is marked dead.

package embedding

import (
	"errors"
	"strconv"
)

// Sentinel errors for embedding operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("embedding: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("embedding: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge or incidence.
	ErrEdgeNotFound = errors.New("embedding: edge not found")

	// ErrFaceNotFound indicates an operation referenced a non-existent face.
	ErrFaceNotFound = errors.New("embedding: face not found")

	// ErrDuplicateEdge indicates an explicit edge ID that is already in use.
	ErrDuplicateEdge = errors.New("embedding: duplicate edge ID")

	// ErrInvalidInsertion indicates before/after positions lying on different
	// faces of one component; inserting there would break planarity.
	ErrInvalidInsertion = errors.New("embedding: invalid insertion position")

	// ErrInvalidRotation indicates a rotation system that does not list every
	// edge end exactly once.
	ErrInvalidRotation = errors.New("embedding: invalid rotation system")

	// ErrCorrupt indicates a violated structural invariant, usually detected
	// by a walk exceeding its iteration bound.
	ErrCorrupt = errors.New("embedding: structural corruption")
)

// IsNotFound reports whether err belongs to the element-not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVertexNotFound) ||
		errors.Is(err, ErrEdgeNotFound) ||
		errors.Is(err, ErrFaceNotFound)
}

// none marks an absent arena reference.
const none = -1

// FaceID identifies a face of an Embedding. IDs are arena indices and are
// never reused while the Embedding lives.
type FaceID int

// NoFace is the zero-value face reference returned alongside errors.
const NoFace FaceID = none

// halfEdge is one direction of an undirected edge.
type halfEdge struct {
	origin int // vertex index
	twin   int // opposite half-edge
	next   int // next half-edge around the face
	prev   int // previous half-edge around the face
	face   int // owning face
	edge   int // edge record
}

// vertexRec is a vertex of the mesh; leaving == none means isolated.
type vertexRec struct {
	id      string
	leaving int
	payload any
	live    bool
}

// edgeRec ties a user-visible edge to its forward half-edge (source→target).
type edgeRec struct {
	id      string
	half    int
	payload any
	live    bool
}

// faceRec is a face; adjacent is any half-edge on its boundary cycle.
type faceRec struct {
	adjacent int
	boundary bool
	payload  any
	live     bool
}

// Edge describes an undirected edge of the embedding.
type Edge struct {
	ID     string
	Source string
	Target string
}

// DirectedEdge is one traversal direction of an edge.
// Forward is true when Source/Target match the edge's own orientation; it
// distinguishes the two directions of a self-loop.
type DirectedEdge struct {
	Edge    string
	Source  string
	Target  string
	Forward bool
}

// Incidence is one slot of a vertex rotation.
type Incidence struct {
	Edge     string
	Neighbor string
	Forward  bool
}

// Option configures an Embedding at construction.
type Option func(*Embedding)

// WithVertexFactory sets a payload factory invoked for every new vertex.
func WithVertexFactory(fn func(id string) any) Option {
	return func(m *Embedding) { m.vertexFactory = fn }
}

// WithEdgeFactory sets a payload factory invoked for every new edge that was
// added without an explicit payload.
func WithEdgeFactory(fn func(id, source, target string) any) Option {
	return func(m *Embedding) { m.edgeFactory = fn }
}

// WithFaceFactory sets a payload factory invoked for every new face.
func WithFaceFactory(fn func(f FaceID) any) Option {
	return func(m *Embedding) { m.faceFactory = fn }
}

// Embedding is a half-edge mesh (doubly-connected edge list) holding a
// rotation system: the cyclic order of edges around every vertex.
//
// The rotation successor of a half-edge e leaving v is next(twin(e)).
// Embedding is not safe for concurrent mutation.
type Embedding struct {
	vertices []vertexRec
	halves   []halfEdge
	edges    []edgeRec
	faces    []faceRec

	vertexIndex map[string]int // vertex ID → arena index
	edgeIndex   map[string]int // edge ID → arena index

	boundary   int    // boundary face index or none
	nextEdgeID uint64 // generated edge IDs ("e1", "e2", ...)
	liveHalves int
	liveFaces  int

	vertexFactory func(id string) any
	edgeFactory   func(id, source, target string) any
	faceFactory   func(f FaceID) any
}

// New creates an empty Embedding.
func New(opts ...Option) *Embedding {
	m := &Embedding{
		vertexIndex: make(map[string]int),
		edgeIndex:   make(map[string]int),
		boundary:    none,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// walkBound is the iteration limit for any cycle walk.
func (m *Embedding) walkBound() int { return len(m.halves) + 1 }

// generateEdgeID returns the next unused "e<N>" identifier.
func (m *Embedding) generateEdgeID() string {
	for {
		m.nextEdgeID++
		id := "e" + strconv.FormatUint(m.nextEdgeID, 10)
		if _, taken := m.edgeIndex[id]; !taken {
			return id
		}
	}
}

// newFace allocates a live face record and runs the face factory.
func (m *Embedding) newFace(adjacent int) int {
	f := len(m.faces)
	m.faces = append(m.faces, faceRec{adjacent: adjacent, live: true})
	m.liveFaces++
	if m.faceFactory != nil {
		m.faces[f].payload = m.faceFactory(FaceID(f))
	}
	if m.boundary == none {
		m.boundary = f
		m.faces[f].boundary = true
	}

	return f
}

// killFace marks f dead and moves the boundary flag if needed.
func (m *Embedding) killFace(f int) {
	m.faces[f].live = false
	m.faces[f].adjacent = none
	m.liveFaces--
	if m.boundary != f {
		return
	}
	m.faces[f].boundary = false
	m.boundary = none
	for i := range m.faces {
		if m.faces[i].live {
			m.boundary = i
			m.faces[i].boundary = true

			return
		}
	}
}

// newHalfPair allocates the two half-edges of edge e; h is origin→other.
func (m *Embedding) newHalfPair(e, origin, other int) (int, int) {
	h := len(m.halves)
	t := h + 1
	m.halves = append(m.halves,
		halfEdge{origin: origin, twin: t, next: none, prev: none, face: none, edge: e},
		halfEdge{origin: other, twin: h, next: none, prev: none, face: none, edge: e},
	)
	m.liveHalves += 2

	return h, t
}

// link sets next(a) = b and prev(b) = a.
func (m *Embedding) link(a, b int) {
	m.halves[a].next = b
	m.halves[b].prev = a
}

// target returns the destination vertex index of half-edge h.
func (m *Embedding) target(h int) int { return m.halves[m.halves[h].twin].origin }

// aroundNext is the rotation successor of h at its origin.
func (m *Embedding) aroundNext(h int) int { return m.halves[m.halves[h].twin].next }

// isForward reports whether h is the edge's source→target half.
func (m *Embedding) isForward(h int) bool { return m.edges[m.halves[h].edge].half == h }

func (m *Embedding) directed(h int) DirectedEdge {
	return DirectedEdge{
		Edge:    m.edges[m.halves[h].edge].id,
		Source:  m.vertices[m.halves[h].origin].id,
		Target:  m.vertices[m.target(h)].id,
		Forward: m.isForward(h),
	}
}
