// File: engine.go
// Role: Boyer-Myrvold walkup / walkdown over dense vertex and edge indices.
// Determinism:
//   - Vertices are indexed in Vertices() order, edges in Edges() order.
//   - Back edges are scanned in Edges() order at every vertex.
//   - Separated children are ordered by low-point, ties by discovery number.
// AI-HINT (file):
//   - A vertex index doubles as the ID of its virtual root copy; a root copy
//     is only ever reached through a childHandles entry, never faceHandles.

package planarity

import (
	"cmp"
	"container/list"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/dfs"
)

// mergeFrame records one descent of the walkdown into a child bicomponent.
type mergeFrame struct {
	vertex     int
	upperFirst bool // the descent entered vertex along its first side
	lowerFirst bool // the descent leaves vertex along its first side
}

// engine is the state of one planarity run.
type engine struct {
	opts Options
	log  *log.Logger

	ids       []string
	index     map[string]int
	edges     []*core.Edge
	edgeIndex map[string]int
	ends      [][2]int
	adj       [][]int // incident edge indices in Edges() order, loops once

	dfsNum     []int
	low        []int
	least      []int
	parent     []int
	parentEdge []int
	byDFS      []int // vertices by ascending discovery number

	faceHandles    []*faceHandle
	childHandles   []*faceHandle
	canonical      []int
	pertinentRoots []*doublylinkedlist.List // of *faceHandle
	separated      []*list.List             // of int, ascending low-point
	separatedNode  []*list.Element
	backedges      [][]int
	backedgeFlag   []int
	visited        []int
	flipped        []bool
	selfLoops      []int
	mergeStack     *arraystack.Stack // of mergeFrame

	// isolation support
	mergePoints []int
	embedded    []int
	kv, kx, ky  int

	walkBound int
	err       error
}

// newEngine indexes g, runs the preprocessor and seeds every face handle
// with the DFS tree.
func newEngine(g core.Source, opts Options) (*engine, error) {
	const method = "New"

	ids := g.Vertices()
	n := len(ids)
	e := &engine{
		opts:      opts,
		log:       opts.Logger,
		ids:       ids,
		index:     make(map[string]int, n),
		edges:     g.Edges(),
		adj:       make([][]int, n),
		kv:        none,
		kx:        none,
		ky:        none,
		walkBound: 2*n + 4,
	}
	for i, id := range ids {
		if _, dup := e.index[id]; dup {
			return nil, fmt.Errorf("%s: vertex %q: %w", method, id, ErrDuplicateVertex)
		}
		e.index[id] = i
	}
	e.edgeIndex = make(map[string]int, len(e.edges))
	e.ends = make([][2]int, len(e.edges))
	for i, ed := range e.edges {
		if _, dup := e.edgeIndex[ed.ID]; dup {
			return nil, fmt.Errorf("%s: edge %q: %w", method, ed.ID, ErrDuplicateEdge)
		}
		e.edgeIndex[ed.ID] = i
		from, okFrom := e.index[ed.From]
		to, okTo := e.index[ed.To]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("%s: edge %q (%s-%s): %w", method, ed.ID, ed.From, ed.To, ErrUnknownVertex)
		}
		e.ends[i] = [2]int{from, to}
		e.adj[from] = append(e.adj[from], i)
		if to != from {
			e.adj[to] = append(e.adj[to], i)
		}
	}

	res, err := opts.Preprocessor(g)
	if err != nil {
		return nil, fmt.Errorf("%s: preprocess: %w", method, err)
	}
	if err = e.load(res); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	e.seed()

	return e, nil
}

// load copies a DFS numbering into dense arrays and checks it against g.
func (e *engine) load(res *dfs.Result) error {
	n := len(e.ids)
	if res == nil || len(res.Order) != n {
		return ErrBadPreprocessing
	}
	e.dfsNum = make([]int, n)
	e.low = make([]int, n)
	e.least = make([]int, n)
	e.parent = make([]int, n)
	e.parentEdge = make([]int, n)
	e.byDFS = make([]int, n)

	for i, id := range res.Order {
		v, ok := e.index[id]
		if !ok || res.Number[id] != i {
			return fmt.Errorf("order slot %d (%q): %w", i, id, ErrBadPreprocessing)
		}
		e.byDFS[i] = v
		e.dfsNum[v] = i
	}
	for v, id := range e.ids {
		low, okLow := res.LowPoint[id]
		least, okLeast := res.LeastAncestor[id]
		p, okParent := e.index[res.Parent[id]]
		if !okLow || !okLeast || !okParent {
			return fmt.Errorf("vertex %q: %w", id, ErrBadPreprocessing)
		}
		e.low[v], e.least[v], e.parent[v] = low, least, p
		e.parentEdge[v] = none
		if p == v {
			continue
		}
		pe, ok := e.edgeIndex[res.ParentEdge[id]]
		if !ok || e.dfsNum[p] >= e.dfsNum[v] || e.ends[pe] != [2]int{v, p} && e.ends[pe] != [2]int{p, v} {
			return fmt.Errorf("vertex %q: parent edge: %w", id, ErrBadPreprocessing)
		}
		e.parentEdge[v] = pe
	}

	return nil
}

func (e *engine) newSeq() edgeSeq {
	if e.opts.ListStorage {
		return newListSeq()
	}

	return newTreeSeq()
}

// seed pre-embeds every tree edge and builds the separated child lists.
func (e *engine) seed() {
	n := len(e.ids)
	e.faceHandles = make([]*faceHandle, n)
	e.childHandles = make([]*faceHandle, n)
	e.canonical = make([]int, n)
	e.pertinentRoots = make([]*doublylinkedlist.List, n)
	e.separated = make([]*list.List, n)
	e.separatedNode = make([]*list.Element, n)
	e.backedges = make([][]int, n)
	e.backedgeFlag = make([]int, n)
	e.visited = make([]int, n)
	e.flipped = make([]bool, n)
	e.mergeStack = arraystack.New()

	for v := range n {
		e.faceHandles[v] = newFaceHandle(v, e.newSeq())
		if p := e.parent[v]; p != v {
			e.faceHandles[v].seed(e.parentEdge[v], p)
			e.childHandles[v] = newFaceHandle(p, e.newSeq())
			e.childHandles[v].seed(e.parentEdge[v], v)
		} else {
			e.childHandles[v] = newFaceHandle(v, e.newSeq())
		}
		e.canonical[v] = v
		e.pertinentRoots[v] = doublylinkedlist.New()
		e.separated[v] = list.New()
		e.backedgeFlag[v] = n
		e.visited[v] = n
	}

	byLow := slices.Clone(e.byDFS)
	slices.SortStableFunc(byLow, func(a, b int) int { return cmp.Compare(e.low[a], e.low[b]) })
	for _, v := range byLow {
		if p := e.parent[v]; p != v {
			e.separatedNode[v] = e.separated[p].PushBack(v)
		}
	}
}

// other returns the endpoint of edge i opposite to v.
func (e *engine) other(i, v int) int {
	if e.ends[i][0] == v {
		return e.ends[i][1]
	}

	return e.ends[i][0]
}

// corrupt records the first structural failure; walks stop at the bound.
func (e *engine) corrupt(where string) {
	if e.err == nil {
		e.err = fmt.Errorf("%s exceeded %d steps: %w", where, e.walkBound, ErrCorrupt)
	}
}

// run is the main loop: vertices in descending discovery order.
func (e *engine) run() (bool, error) {
	e.log.Debug("planarity run", "vertices", len(e.ids), "edges", len(e.edges), "list", e.opts.ListStorage)
	for i := len(e.byDFS) - 1; i >= 0; i-- {
		v := e.byDFS[i]
		e.storeOldHandles()
		e.walkup(v)
		if e.err != nil {
			return false, e.err
		}
		embedded := e.walkdown(v)
		if e.err != nil {
			return false, e.err
		}
		if !embedded {
			e.log.Debug("walkdown blocked", "v", e.ids[e.kv], "x", e.ids[e.kx], "y", e.ids[e.ky])

			return false, nil
		}
	}
	e.finalize()

	return true, nil
}

// walkup marks, for every unembedded back edge (v,w), the bicomponent roots
// between w and v as pertinent.
func (e *engine) walkup(v int) {
	ts := e.dfsNum[v]
	for _, ei := range e.adj[v] {
		if e.ends[ei][0] == e.ends[ei][1] {
			e.selfLoops = append(e.selfLoops, ei)
			continue
		}
		w := e.other(ei, v)
		if e.dfsNum[w] < ts || ei == e.parentEdge[w] {
			continue
		}
		e.backedges[w] = append(e.backedges[w], ei)
		e.backedgeFlag[w] = ts

		it := e.walkupFrom(w)
		lead := w
		for {
			for !it.done() && e.visited[it.vertex()] != ts {
				lead = it.vertex()
				e.visited[lead] = ts
				it.next()
			}
			if !it.done() || e.err != nil {
				break
			}

			// lead touches a bicomponent root reached by a fresh path
			child := e.canonical[lead]
			p := e.parent[child]
			root := e.childHandles[child]
			e.visited[root.firstVertex] = ts
			e.visited[root.secondVertex] = ts
			if e.low[child] < ts || e.least[child] < ts {
				e.pertinentRoots[p].Add(root)
			} else {
				e.pertinentRoots[p].Prepend(root)
			}
			if p == v || e.visited[p] == ts {
				break
			}
			it = e.walkupFrom(p)
			lead = p
		}
	}
}

func (e *engine) pertinent(w, v int) bool {
	return e.backedgeFlag[w] == e.dfsNum[v] || !e.pertinentRoots[w].Empty()
}

func (e *engine) externallyActive(w, v int) bool {
	d := e.dfsNum[v]
	if e.least[w] < d {
		return true
	}
	front := e.separated[w].Front()

	return front != nil && e.low[front.Value.(int)] < d
}

func (e *engine) internallyActive(w, v int) bool {
	return e.pertinent(w, v) && !e.externallyActive(w, v)
}

func (e *engine) frontRoot(v int) *faceHandle {
	h, _ := e.pertinentRoots[v].Get(0)

	return h.(*faceHandle)
}

// walkdown embeds every back edge from v to its descendants, merging the
// bicomponents on the way. It reports false when a pertinent vertex is
// walled off by two externally active ones.
func (e *engine) walkdown(v int) bool {
	n := len(e.ids)
	for !e.pertinentRoots[v].Empty() {
		root := e.frontRoot(v)
		e.pertinentRoots[v].Remove(0)
		curr := root
		e.mergeStack.Clear()

	descend:
		for e.err == nil {
			x, y := none, none
			firstTail, secondTail := curr.anchor, curr.anchor

			// 1. Scan both sides for the first pertinent or active vertex
			firstIt := e.iterFrom(curr, firstSide, false)
			for ; !firstIt.done(); firstIt.next() {
				u := firstIt.lead
				if e.pertinent(u, v) || e.externallyActive(u, v) {
					x, y = u, u
					break
				}
				firstTail = u
			}
			if x == none || x == curr.anchor {
				break
			}
			secondIt := e.iterFrom(curr, secondSide, false)
			for ; !secondIt.done(); secondIt.next() {
				u := secondIt.lead
				if e.pertinent(u, v) || e.externallyActive(u, v) {
					y = u
					break
				}
				secondTail = u
			}

			// 2. Pick a side: internally active first, then pertinent
			var chosen int
			var upperFirst bool
			switch {
			case e.internallyActive(x, v):
				chosen, upperFirst = x, true
			case e.internallyActive(y, v):
				chosen, upperFirst = y, false
			case e.pertinent(x, v):
				chosen, upperFirst = x, true
			case e.pertinent(y, v):
				chosen, upperFirst = y, false
			default:
				// both stops are externally active only
				for ; !firstIt.done() && firstIt.lead != y; firstIt.next() {
					if e.pertinent(firstIt.lead, v) {
						e.kv, e.kx, e.ky = v, x, y

						return false
					}
				}
				e.shortCircuit(v, root, x, y, firstTail, secondTail)

				break descend
			}

			lowerFirst := (upperFirst && e.faceHandles[chosen].firstVertex == firstTail) ||
				(!upperFirst && e.faceHandles[chosen].firstVertex == secondTail)

			// 3. Descend into a pertinent child root, or embed at chosen
			if e.backedgeFlag[chosen] != e.dfsNum[v] {
				e.mergeStack.Push(mergeFrame{vertex: chosen, upperFirst: upperFirst, lowerFirst: lowerFirst})
				curr = e.frontRoot(chosen)
				continue
			}
			e.backedgeFlag[chosen] = n
			e.addMergePoint(chosen)
			for _, be := range e.backedges[chosen] {
				e.addEmbedded(be)
				if lowerFirst {
					e.faceHandles[chosen].pushFirst(be, v)
				} else {
					e.faceHandles[chosen].pushSecond(be, v)
				}
			}

			// 4. Unwind the merge stack, gluing every child root to its parent
			bottomFirst := upperFirst
			for !e.mergeStack.Empty() {
				top, _ := e.mergeStack.Pop()
				frame := top.(mergeFrame)
				e.merge(frame, bottomFirst)
				bottomFirst = frame.upperFirst
			}

			// 5. Embed the back edges at the root copy of v
			e.canonical[chosen] = e.canonical[root.firstVertex]
			e.addMergePoint(root.anchor)
			for _, be := range e.backedges[chosen] {
				if bottomFirst {
					root.pushFirst(be, chosen)
				} else {
					root.pushSecond(be, chosen)
				}
			}
			e.backedges[chosen] = nil
			curr = root
		}
	}

	return true
}

// merge glues the front pertinent root of frame.vertex into its face handle.
func (e *engine) merge(frame mergeFrame, bottomFirst bool) {
	point := frame.vertex
	topFirst := frame.lowerFirst
	top := e.faceHandles[point]
	bottom := e.frontRoot(point)
	child := e.canonical[bottom.firstVertex]

	e.separated[e.parent[child]].Remove(e.separatedNode[child])
	e.pertinentRoots[point].Remove(0)
	e.addMergePoint(top.anchor)

	switch {
	case topFirst && bottomFirst:
		bottom.flip()
		top.glueFirstToSecond(bottom)
	case !topFirst && bottomFirst:
		e.flipped[child] = true
		top.glueSecondToFirst(bottom)
	case topFirst && !bottomFirst:
		e.flipped[child] = true
		top.glueFirstToSecond(bottom)
	default:
		bottom.flip()
		top.glueSecondToFirst(bottom)
	}
}

// shortCircuit lets later walkdowns jump from the root straight to the two
// active stops x and y.
func (e *engine) shortCircuit(v int, root *faceHandle, x, y, firstTail, secondTail int) {
	if x == y {
		switch {
		case firstTail != v:
			h := e.faceHandles[firstTail]
			next := h.firstVertex
			if next == x {
				next = h.secondVertex
			}
			x, firstTail = firstTail, next
		case secondTail != v:
			h := e.faceHandles[secondTail]
			next := h.firstVertex
			if next == y {
				next = h.secondVertex
			}
			y, secondTail = secondTail, next
		default:
			return
		}
	}

	e.canonical[x] = e.canonical[root.firstVertex]
	e.canonical[y] = e.canonical[root.secondVertex]
	root.firstVertex = x
	root.secondVertex = y

	if h := e.faceHandles[x]; h.firstVertex == firstTail {
		h.firstVertex = v
	} else {
		h.secondVertex = v
	}
	if h := e.faceHandles[y]; h.firstVertex == secondTail {
		h.firstVertex = v
	} else {
		h.secondVertex = v
	}
}

func (e *engine) storeOldHandles() {
	if !e.opts.Kuratowski {
		return
	}
	for _, mp := range e.mergePoints {
		e.faceHandles[mp].storeOld()
	}
	e.mergePoints = e.mergePoints[:0]
}

func (e *engine) addMergePoint(v int) {
	if e.opts.Kuratowski {
		e.mergePoints = append(e.mergePoints, v)
	}
}

func (e *engine) addEmbedded(edge int) {
	if e.opts.Kuratowski {
		e.embedded = append(e.embedded, edge)
	}
}

// finalize glues leftover child roots, resolves deferred flips in discovery
// order and attaches self-loops.
func (e *engine) finalize() {
	for v := range e.ids {
		for el := e.separated[v].Front(); el != nil; el = el.Next() {
			c := el.Value.(int)
			e.childHandles[c].flip()
			e.faceHandles[v].glueFirstToSecond(e.childHandles[c])
		}
	}

	for _, v := range e.byDFS {
		own, fromParent := e.flipped[v], e.flipped[e.parent[v]]
		switch {
		case own && !fromParent:
			e.faceHandles[v].flip()
		case fromParent && !own:
			e.faceHandles[v].flip()
			e.flipped[v] = true
		default:
			e.flipped[v] = false
		}
	}

	// both ends of a loop sit side by side in the rotation
	for _, l := range e.selfLoops {
		v := e.ends[l][0]
		e.faceHandles[v].pushSecond(l, v)
		e.faceHandles[v].pushSecond(l, v)
	}
}

// rotation returns the edge indices around v after a planar run.
func (e *engine) rotation(v int) []int {
	return e.faceHandles[v].edges.appendTo(nil)
}
