// File: facehandle.go
// Role: Face handles and the iterators that walk the external faces of
// partially embedded biconnected components.
//
//   - Every vertex owns one handle; every non-root DFS child c owns a second
//     handle anchored at the virtual root copy of parent(c).
//   - A handle stores the two external-face neighbours of its anchor: the
//     cached pair (possibly short-circuited past inactive vertices) and the
//     true pair, plus the first/second edges and the anchor's edge sequence.
//   - Old values are a snapshot taken before each main-loop step; only the
//     Kuratowski isolator reads them.

package planarity

// faceHandle holds the external-face bookkeeping of one anchor.
type faceHandle struct {
	anchor int

	firstVertex, secondVertex int // cached, may skip inactive vertices
	trueFirst, trueSecond     int
	firstEdge, secondEdge     int

	oldFirst, oldSecond         int
	oldFirstEdge, oldSecondEdge int

	edges edgeSeq
}

// newFaceHandle returns an empty handle anchored at anchor.
func newFaceHandle(anchor int, seq edgeSeq) *faceHandle {
	return &faceHandle{
		anchor:        anchor,
		firstVertex:   none,
		secondVertex:  none,
		trueFirst:     none,
		trueSecond:    none,
		firstEdge:     none,
		secondEdge:    none,
		oldFirst:      none,
		oldSecond:     none,
		oldFirstEdge:  none,
		oldSecondEdge: none,
		edges:         seq,
	}
}

// seed installs the initial edge e to other on both sides.
func (h *faceHandle) seed(e, other int) {
	h.firstVertex, h.secondVertex = other, other
	h.trueFirst, h.trueSecond = other, other
	h.firstEdge, h.secondEdge = e, e
	h.edges.pushBack(e)
	h.storeOld()
}

func (h *faceHandle) pushFirst(e, other int) {
	h.firstVertex, h.trueFirst = other, other
	h.firstEdge = e
	h.edges.pushFront(e)
}

func (h *faceHandle) pushSecond(e, other int) {
	h.secondVertex, h.trueSecond = other, other
	h.secondEdge = e
	h.edges.pushBack(e)
}

// flip reverses the orientation of the handle.
func (h *faceHandle) flip() {
	h.edges.reverse()
	h.trueFirst, h.trueSecond = h.trueSecond, h.trueFirst
	h.firstVertex, h.secondVertex = h.secondVertex, h.firstVertex
	h.firstEdge, h.secondEdge = h.secondEdge, h.firstEdge
}

// glueFirstToSecond absorbs bottom in front of h; h's first side becomes
// bottom's first side.
func (h *faceHandle) glueFirstToSecond(bottom *faceHandle) {
	h.edges.concatFront(bottom.edges)
	h.trueFirst = bottom.trueFirst
	h.firstVertex = bottom.firstVertex
	h.firstEdge = bottom.firstEdge
}

// glueSecondToFirst absorbs bottom behind h; h's second side becomes
// bottom's second side.
func (h *faceHandle) glueSecondToFirst(bottom *faceHandle) {
	h.edges.concatBack(bottom.edges)
	h.trueSecond = bottom.trueSecond
	h.secondVertex = bottom.secondVertex
	h.secondEdge = bottom.secondEdge
}

func (h *faceHandle) storeOld() {
	h.oldFirst, h.oldSecond = h.trueFirst, h.trueSecond
	h.oldFirstEdge, h.oldSecondEdge = h.firstEdge, h.secondEdge
}

// sides returns the neighbour pair and its edges, current or snapshot.
func (h *faceHandle) sides(old bool) (first, second, firstEdge, secondEdge int) {
	if old {
		return h.oldFirst, h.oldSecond, h.oldFirstEdge, h.oldSecondEdge
	}

	return h.firstVertex, h.secondVertex, h.firstEdge, h.secondEdge
}

// resetVertexCache drops every short-circuit.
func (h *faceHandle) resetVertexCache() {
	h.firstVertex, h.secondVertex = h.trueFirst, h.trueSecond
}

// side selects which neighbour an iterator starts towards.
type side bool

const (
	firstSide  side = true
	secondSide side = false
)

// faceIter walks the external face starting from a handle. The iterator
// holds a lead vertex, the vertex it came from (follow) and the edge between
// them. It is done once lead is none.
type faceIter struct {
	e      *engine
	lead   int
	follow int
	edge   int
	old    bool // read the snapshot instead of the current handles
	steps  int
}

// iterFrom starts at h's anchor towards the selected side.
func (e *engine) iterFrom(h *faceHandle, s side, old bool) *faceIter {
	it := &faceIter{e: e, follow: h.anchor, old: old}
	first, second, firstEdge, secondEdge := h.sides(old)
	if s == firstSide {
		it.lead, it.edge = first, firstEdge
	} else {
		it.lead, it.edge = second, secondEdge
	}

	return it
}

// iterAt starts at the face handle of vertex v.
func (e *engine) iterAt(v int, s side, old bool) *faceIter {
	return e.iterFrom(e.faceHandles[v], s, old)
}

func (it *faceIter) done() bool { return it.lead == none }

// next steps to the lead's neighbour away from follow.
func (it *faceIter) next() {
	if it.lead == none {
		return
	}
	it.steps++
	if it.steps > it.e.walkBound {
		it.e.corrupt("face walk")
		it.lead, it.follow, it.edge = none, none, none

		return
	}

	first, second, firstEdge, secondEdge := it.e.faceHandles[it.lead].sides(it.old)

	switch it.follow {
	case first:
		it.follow = it.lead
		it.lead, it.edge = second, secondEdge
	case second:
		it.follow = it.lead
		it.lead, it.edge = first, firstEdge
	default:
		it.lead, it.follow, it.edge = none, none, none
	}
}

// peekEdge returns the edge next would move onto, or none.
func (it *faceIter) peekEdge() int {
	if it.lead == none {
		return none
	}
	first, second, firstEdge, secondEdge := it.e.faceHandles[it.lead].sides(it.old)
	switch it.follow {
	case first:
		return secondEdge
	case second:
		return firstEdge
	}

	return none
}

// walkupIter climbs both sides of a biconnected component in parallel,
// alternating one step per side, and reports the follow vertex.
type walkupIter struct {
	sides        [2]*faceIter
	active       int
	firstAdvance bool
}

func (e *engine) walkupFrom(v int) *walkupIter {
	return &walkupIter{
		sides: [2]*faceIter{
			e.iterAt(v, firstSide, false),
			e.iterAt(v, secondSide, false),
		},
		firstAdvance: true,
	}
}

func (w *walkupIter) done() bool { return w.sides[0].done() || w.sides[1].done() }

func (w *walkupIter) vertex() int { return w.sides[w.active].follow }

func (w *walkupIter) next() {
	if w.firstAdvance {
		w.sides[0].next()
		w.sides[1].next()
		w.firstAdvance = false
	} else {
		w.sides[w.active].next()
	}
	w.active = 1 - w.active
}
