package traverse

import (
	"errors"

	"github.com/katalvlaran/lvlath-planar/embedding"
)

// Sentinel errors for traversal operations.
var (
	// ErrNilEmbedding is returned when a nil embedding is passed in.
	ErrNilEmbedding = errors.New("traverse: embedding is nil")

	// ErrNotTriangulated indicates an embedding that is not connected and
	// simple with a simple boundary cycle and triangular inner faces.
	ErrNotTriangulated = errors.New("traverse: embedding is not internally triangulated")
)

// Visitor receives traversal events. Every field is optional.
// BeginFace and EndFace receive the directed edge the face walk starts and
// closes at; the NextEdge calls between them run from that edge around the
// face and back to it.
type Visitor struct {
	BeginTraversal func()
	BeginFace      func(first embedding.DirectedEdge)
	NextVertex     func(v string)
	NextEdge       func(e embedding.DirectedEdge)
	EndFace        func(first embedding.DirectedEdge)
	EndTraversal   func()
}

func (vis *Visitor) beginTraversal() {
	if vis.BeginTraversal != nil {
		vis.BeginTraversal()
	}
}

func (vis *Visitor) beginFace(first embedding.DirectedEdge) {
	if vis.BeginFace != nil {
		vis.BeginFace(first)
	}
}

// step reports one directed boundary edge: its source, then the edge.
func (vis *Visitor) step(e embedding.DirectedEdge) {
	if vis.NextVertex != nil {
		vis.NextVertex(e.Source)
	}
	if vis.NextEdge != nil {
		vis.NextEdge(e)
	}
}

func (vis *Visitor) endFace(first embedding.DirectedEdge) {
	if vis.EndFace != nil {
		vis.EndFace(first)
	}
}

func (vis *Visitor) endTraversal() {
	if vis.EndTraversal != nil {
		vis.EndTraversal()
	}
}

// dart is one direction of an edge; forward follows the edge's own orientation.
type dart struct {
	edge    string
	forward bool
}

func (d dart) twin() dart { return dart{edge: d.edge, forward: !d.forward} }
