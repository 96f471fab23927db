package traverse

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/lvlath-planar/embedding"
)

// arc is a working-map entry: the dart as seen by the visitor and its
// successor around the same face.
type arc struct {
	edge embedding.DirectedEdge
	next dart
}

// workingMap copies the rotation system of m into a map keyed by dart.
// It also returns every dart in vertex and rotation order, for deterministic
// restarts on further components.
func workingMap(m *embedding.Embedding) (map[dart]arc, []dart, error) {
	work := make(map[dart]arc, 2*m.EdgeCount())
	order := make([]dart, 0, 2*m.EdgeCount())
	for _, v := range m.Vertices() {
		inc, err := m.Incidences(v)
		if err != nil {
			return nil, nil, err
		}
		for i, in := range inc {
			out := dart{edge: in.Edge, forward: in.Forward}
			o := work[out]
			o.edge = embedding.DirectedEdge{Edge: in.Edge, Source: v, Target: in.Neighbor, Forward: in.Forward}
			work[out] = o

			// The face successor of the dart arriving along this slot is
			// the next slot of v's rotation.
			succ := inc[(i+1)%len(inc)]
			arrive := out.twin()
			a := work[arrive]
			a.next = dart{edge: succ.Edge, forward: succ.Forward}
			work[arrive] = a

			order = append(order, out)
		}
	}

	return work, order, nil
}

// BreadthFirst reports every face of m exactly once. It starts from the
// boundary face and then crosses edges outward: whenever a face walk passes
// an edge whose other side is still unvisited, that side is queued. Each
// component without a queued dart is entered at its first vertex.
//
// Every directed edge is reported exactly once. Isolated vertices have no
// faces and are not reported.
// Complexity: O(V + E).
func BreadthFirst(m *embedding.Embedding, vis Visitor) error {
	if m == nil {
		return fmt.Errorf("BreadthFirst: %w", ErrNilEmbedding)
	}
	work, order, err := workingMap(m)
	if err != nil {
		return fmt.Errorf("BreadthFirst: %w", err)
	}

	queue := linkedlistqueue.New()
	if f, ok := m.Boundary(); ok {
		walk, err := m.FaceEdges(f)
		if err != nil {
			return fmt.Errorf("BreadthFirst: %w", err)
		}
		queue.Enqueue(dart{edge: walk[0].Edge, forward: walk[0].Forward})
	}

	vis.beginTraversal()
	restart := 0
	for len(work) > 0 {
		if queue.Empty() {
			for ; restart < len(order); restart++ {
				if _, ok := work[order[restart]]; ok {
					queue.Enqueue(order[restart])
					break
				}
			}
		}
		x, _ := queue.Dequeue()
		d := x.(dart)
		if _, ok := work[d]; !ok {
			continue
		}
		if err = walkFace(work, d, len(order), queue, &vis); err != nil {
			return fmt.Errorf("BreadthFirst: %w", err)
		}
	}
	vis.endTraversal()

	return nil
}

// walkFace reports the face left of start, removing its darts from work and
// queueing their unvisited twins.
func walkFace(work map[dart]arc, start dart, bound int, queue *linkedlistqueue.Queue, vis *Visitor) error {
	first := work[start].edge
	vis.beginFace(first)
	cur := start
	for steps := 0; ; steps++ {
		a, ok := work[cur]
		if !ok || steps > bound {
			return fmt.Errorf("face through %s: %w", start.edge, embedding.ErrCorrupt)
		}
		delete(work, cur)
		vis.step(a.edge)
		if _, open := work[cur.twin()]; open {
			queue.Enqueue(cur.twin())
		}
		cur = a.next
		if cur == start {
			break
		}
	}
	vis.endFace(first)

	return nil
}
