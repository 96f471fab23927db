// File: kuratowski.go
// Role: Kuratowski subgraph isolation after a blocked walkdown.
//   - isolate reads the frozen engine state around the witness (v, x, y) and
//     collects a candidate edge set through constrained walkups (cases A-E).
//     The case deletions trim the candidate but need not leave it exact.
//   - minimize proves every returned edge essential: the result is a minimal
//     non-planar edge set, i.e. a subdivision of K5 or K3,3.
// Determinism:
//   - Every scan runs in vertex index or Edges() order.

package planarity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlath-planar/core"
)

// isolation cases, named after the position of v, x, y, w and z.
type isolationCase int

const (
	caseNone isolationCase = iota
	caseA                  // v is not on the bicomponent of x and y
	caseB                  // an externally active pertinent root w below x-y
	caseC                  // an x-y path ends above x or y
	caseD                  // an inner path joins v to the x-y path
	caseE                  // neither: z and w coincide or sit side by side
)

func (c isolationCase) String() string {
	return [...]string{"none", "A", "B", "C", "D", "E"}[c]
}

// errWalk marks a constrained walk that found no goal.
var errWalk = errors.New("planarity: isolation walk failed")

// isolation holds the witness, the marks shared by the case walks and the
// vertices located along the way.
type isolation struct {
	e *engine

	v, x, y   int
	z, w      int
	firstEnd  int // first x-y path end on the external face
	secondEnd int
	chosen    isolationCase

	inSubgraph []bool
	embedded   []bool
	outer      []bool
	forbidden  []bool
	goal       []bool
	upper      []bool // x, y and the external path above them
	lower      []bool // the external path strictly between x and y
	onPath     []bool // inner vertices of the x-y path
}

func (k *isolation) has(set []bool, edge int) bool {
	return edge != none && set[edge]
}

// aim resets the walk marks: outer face edges are forbidden, non-outer edges
// touching target (when set) are goals.
func (k *isolation) aim(target int) {
	for i, ends := range k.e.ends {
		k.forbidden[i] = k.outer[i]
		k.goal[i] = target != none && !k.outer[i] && (ends[0] == target || ends[1] == target)
	}
}

// walkup searches, from each unembedded back edge of v, for an upward path
// along external faces that ends on a goal edge without crossing a forbidden
// one. It returns the last vertex before the goal edge, or none.
func (k *isolation) walkup(v int, path *[]int) int {
	e := k.e
	for _, ei := range e.adj[v] {
		k.forbidden[ei] = true
	}
	for _, ei := range e.adj[v] {
		*path = (*path)[:0]
		end := e.other(ei, v)
		if end == v || e.dfsNum[end] < e.dfsNum[v] || k.embedded[ei] {
			continue
		}
		*path = append(*path, ei)
		if k.goal[ei] {
			return end
		}

		it := e.iterAt(end, firstSide, false)
		for e.err == nil {
			if !it.done() && k.has(k.forbidden, it.edge) {
				break
			}
			moved := false
			for !it.done() && it.edge != none && !k.goal[it.edge] && !k.forbidden[it.edge] {
				f := it.edge
				k.forbidden[f] = true
				*path = append(*path, f)
				end = e.other(f, end)
				it.next()
				moved = true
			}
			if !it.done() && k.has(k.goal, it.edge) {
				*path = append(*path, it.edge)

				return end
			}
			if !moved {
				break
			}
			it = e.iterAt(end, firstSide, false)
		}
	}
	*path = (*path)[:0]

	return none
}

// ancestorWalkup runs walkup from the proper ancestors of v, nearest first,
// until one succeeds.
func (k *isolation) ancestorWalkup(v int, path *[]int) (int, error) {
	e := k.e
	for a := v; e.parent[a] != a; {
		a = e.parent[a]
		if k.walkup(a, path) != none {
			return a, nil
		}
	}

	return none, fmt.Errorf("no ancestor of %q reaches the goal: %w", e.ids[v], errWalk)
}

// candidate is the edge set collected around the witness by one case.
type candidate struct {
	chosen  isolationCase
	trimmed []int // case-specific deletions applied
	raw     []int
}

// isolate collects the candidate edge set around the witness (v, x, y).
//
// The case walks always yield a non-planar set: the external face of the
// bicomponent, the external paths from x and y (and z or w) to ancestors of
// v, and the tree path above the bicomponent root. The case-specific
// deletions only shed the edges that each case is known to make redundant;
// they do not guarantee an exact K5 or K3,3 subdivision. Callers complete
// the result with minimize.
//
// A failed walk (no ancestor path, no w in case E) is reported as errWalk so
// that the caller can widen the candidate.
func (e *engine) isolate() (candidate, error) {
	if e.kv == none {
		return candidate{}, fmt.Errorf("no witness: %w", errWalk)
	}
	n, m := len(e.ids), len(e.edges)
	for v := range n {
		e.faceHandles[v].resetVertexCache()
		e.childHandles[v].resetVertexCache()
	}
	v, x, y := e.kv, e.kx, e.ky
	k := &isolation{
		e:          e,
		v:          v,
		x:          x,
		y:          y,
		z:          none,
		w:          none,
		firstEnd:   none,
		secondEnd:  none,
		inSubgraph: make([]bool, m),
		embedded:   make([]bool, m),
		outer:      make([]bool, m),
		forbidden:  make([]bool, m),
		goal:       make([]bool, m),
		upper:      make([]bool, n),
		lower:      make([]bool, n),
		onPath:     make([]bool, n),
	}
	for _, ei := range e.embedded {
		k.embedded[ei] = true
	}

	// 1. Split the external face at x into its upper and lower paths
	upperSide, lowerSide := firstSide, secondSide
	for it := e.iterAt(x, firstSide, false); !it.done(); it.next() {
		if it.lead == y {
			upperSide, lowerSide = secondSide, firstSide
			break
		}
	}
	k.upper[x] = true
	current, previous := x, none
	for it := e.iterAt(x, upperSide, false); !it.done(); it.next() {
		previous, current = current, it.lead
		k.upper[current] = true
	}
	if previous == none {
		return candidate{}, fmt.Errorf("empty upper path at %q: %w", e.ids[x], errWalk)
	}
	rootHandle := e.childHandles[e.canonical[previous]]

	var wHandle *faceHandle
	it := e.iterAt(x, lowerSide, false)
	for ; !it.done() && it.lead != y; it.next() {
		u := it.lead
		k.lower[u] = true
		if k.w != none {
			continue
		}
		for roots := e.pertinentRoots[u].Iterator(); roots.Next(); {
			h := roots.Value().(*faceHandle)
			if e.low[e.canonical[h.firstVertex]] < e.dfsNum[v] {
				k.w, wHandle = u, h
				break
			}
		}
	}
	if it.done() {
		return candidate{}, fmt.Errorf("lower path from %q misses %q: %w", e.ids[x], e.ids[y], errWalk)
	}
	bicompRoot := none
	for ; !it.done(); it.next() {
		k.upper[it.lead] = true
		bicompRoot = it.lead
	}

	// 2. The external face of the bicomponent is part of every case
	for _, s := range [...]side{firstSide, secondSide} {
		for it := e.iterAt(x, s, false); !it.done(); it.next() {
			if it.edge != none {
				k.outer[it.edge] = true
				k.inSubgraph[it.edge] = true
			}
		}
	}

	// 3. External paths from x and y up to proper ancestors of v
	var (
		xPath, yPath, zPath, wPath, dPath []int
		err                               error
	)
	k.aim(x)
	if _, err = k.ancestorWalkup(v, &xPath); err != nil {
		return candidate{}, err
	}
	k.aim(y)
	if _, err = k.ancestorWalkup(v, &yPath); err != nil {
		return candidate{}, err
	}

	// 4. Classify and run the case walks
	switch {
	case bicompRoot != v:
		k.chosen = caseA
		for u := range n {
			if !k.lower[u] {
				continue
			}
			for _, ei := range e.adj[u] {
				if !k.outer[ei] {
					k.goal[ei] = true
				}
			}
		}
		copy(k.forbidden, k.outer)
		if k.walkup(v, &zPath) == none {
			return candidate{}, fmt.Errorf("case A: %w", errWalk)
		}

	case k.w != none:
		k.chosen = caseB
		k.aim(none)
		k.goal[wHandle.firstEdge] = true
		k.goal[wHandle.secondEdge] = true
		if k.walkup(v, &zPath) == none {
			return candidate{}, fmt.Errorf("case B: %w", errWalk)
		}
		copy(k.forbidden, k.outer)
		for _, ei := range zPath {
			k.goal[ei] = true
		}
		if _, err = k.ancestorWalkup(v, &wPath); err != nil {
			return candidate{}, err
		}
		wPath = k.alignWPath(wHandle, wPath, zPath)

	default:
		k.chosen = caseE
		if !k.xyPath(lowerSide) {
			return candidate{}, fmt.Errorf("case C-E: no z on the lower path: %w", errWalk)
		}
		dPath = k.innerPath()

		k.aim(k.z)
		k.walkup(v, &zPath)
		if k.chosen == caseE {
			if k.w == none {
				return candidate{}, fmt.Errorf("case E: no w: %w", errWalk)
			}
			k.aim(k.w)
			if _, err = k.ancestorWalkup(v, &wPath); err != nil {
				return candidate{}, err
			}
		}
	}
	if e.err != nil {
		return candidate{}, e.err
	}
	e.log.Debug("kuratowski case", "case", k.chosen, "v", e.ids[v], "x", e.ids[x], "y", e.ids[y])

	// 5. Collect paths and the tree path from the bicomponent root upwards
	for _, path := range [...][]int{xPath, yPath, zPath, wPath, dPath} {
		for _, ei := range path {
			k.inSubgraph[ei] = true
		}
	}
	for c := bicompRoot; c != none && e.parent[c] != c; c = e.parent[c] {
		k.inSubgraph[e.parentEdge[c]] = true
	}
	raw := marked(k.inSubgraph)

	// 6. Case-specific deletions
	switch k.chosen {
	case caseB:
		k.unmark(e.parentEdge[v])
	case caseC:
		start := rootHandle.firstVertex
		s := firstSide
		if e.faceHandles[start].firstEdge == rootHandle.firstEdge {
			s = secondSide
		}
		for it := e.iterAt(start, s, false); it.follow != none; it.next() {
			u := it.follow
			if u == x || u == y {
				k.unmark(rootHandle.firstEdge)
				break
			}
			if u == k.firstEnd || u == k.secondEnd {
				k.unmark(rootHandle.secondEdge)
				break
			}
		}
	case caseD:
		k.unmark(rootHandle.firstEdge)
		k.unmark(rootHandle.secondEdge)
	case caseE:
		k.trimCaseE()
	}

	return candidate{chosen: k.chosen, trimmed: marked(k.inSubgraph), raw: raw}, nil
}

func (k *isolation) unmark(edge int) {
	if edge != none {
		k.inSubgraph[edge] = false
	}
}

// alignWPath reroutes the w walk so that it enters the w bicomponent on the
// same side as the z walk.
func (k *isolation) alignWPath(wHandle *faceHandle, wPath, zPath []int) []int {
	e := k.e
	if len(wPath) == 0 || len(zPath) == 0 {
		return wPath
	}
	final, zFinal := wPath[len(wPath)-1], zPath[len(zPath)-1]
	crossed := (final == wHandle.firstEdge && zFinal == wHandle.secondEdge) ||
		(final == wHandle.secondEdge && zFinal == wHandle.firstEdge)
	if !crossed {
		return wPath
	}

	anchor := e.other(final, wHandle.anchor)
	s := firstSide
	if e.faceHandles[anchor].firstEdge == final {
		s = secondSide
	}
	wPath = wPath[:len(wPath)-1]
	for it := e.iterAt(anchor, s, false); !it.done(); it.next() {
		if last := len(wPath) - 1; last >= 0 && wPath[last] == it.edge {
			wPath = wPath[:last]
		} else {
			wPath = append(wPath, it.edge)
		}
	}

	return wPath
}

// xyPath finds z (a pertinent vertex on the lower path whose old external
// edges are both on the outer face) and walks the old faces around z to mark
// the x-y path. It switches to case C when the path leaves the outer face at
// x or y, and reports false when no z exists.
func (k *isolation) xyPath(lowerSide side) bool {
	e, v := k.e, k.v
	for it := e.iterAt(k.x, lowerSide, false); !it.done() && it.lead != k.y; it.next() {
		u := it.lead
		h := e.faceHandles[u]
		if e.pertinent(u, v) && k.has(k.outer, h.oldFirstEdge) && k.has(k.outer, h.oldSecondEdge) {
			k.z = u
			break
		}
	}
	if k.z == none {
		return false
	}
	if e.externallyActive(k.z, v) {
		k.w = k.z
	}

	for _, s := range [...]side{firstSide, secondSide} {
		current, previous := k.z, none
		seenXY := false
		for it := e.iterAt(k.z, s, true); !it.done() && it.edge != none; it.next() {
			edge := it.edge
			previous, current = current, e.other(edge, current)
			if current == k.x || current == k.y {
				seenXY = true
			}
			if k.w == none && !seenXY && e.externallyActive(current, v) &&
				k.has(k.outer, edge) && k.has(k.outer, it.peekEdge()) {
				k.w = current
			}
			if k.outer[edge] {
				if previous == k.x || previous == k.y {
					k.chosen = caseC
				}
				continue
			}

			if !k.upper[current] && !k.lower[current] {
				k.onPath[current] = true
			}
			k.inSubgraph[edge] = true
			for _, end := range e.ends[edge] {
				if !k.upper[end] && !k.lower[end] {
					continue
				}
				if k.firstEnd == none {
					k.firstEnd = end
				} else {
					k.secondEnd = end
				}
			}
		}
	}

	return true
}

// innerPath looks for an inner face path from one of v's embedded edges to
// the x-y path and switches to case D when one exists.
func (k *isolation) innerPath() []int {
	e, v := k.e, k.v
	var path []int
	for _, ei := range e.adj[v] {
		if !k.embedded[ei] || ei == e.parentEdge[v] {
			continue
		}
		path = append(path[:0], ei)
		current := e.other(ei, v)
		s := firstSide
		if e.faceHandles[current].firstVertex == v {
			s = secondSide
		}
		it := e.iterAt(current, s, false)
		for !it.done() && it.edge != none && !k.outer[it.edge] && !k.onPath[current] {
			path = append(path, it.edge)
			current = e.other(it.edge, current)
			it.next()
		}
		if k.onPath[current] {
			k.chosen = caseD

			return path
		}
	}

	return nil
}

// trimCaseE removes one edge when an x-y path end sits below x or y, so the
// subgraph contracts to K3,3.
func (k *isolation) trimCaseE() {
	e := k.e
	below := func(u int) bool { return u != k.x && u != k.y }
	if k.firstEnd == none || k.secondEnd == none || !below(k.firstEnd) && !below(k.secondEnd) {
		return
	}
	k.unmark(e.parentEdge[k.v])

	del, other := k.firstEnd, k.secondEnd
	if k.lower[k.firstEnd] {
		del, other = k.secondEnd, k.firstEnd
	}
	found := false
	for it := e.iterAt(del, firstSide, false); !it.done(); it.next() {
		if it.edge != none && (e.ends[it.edge][0] == other || e.ends[it.edge][1] == other) {
			found = true
			break
		}
	}
	if found {
		k.unmark(e.faceHandles[del].firstEdge)
	} else {
		k.unmark(e.faceHandles[del].secondEdge)
	}
}

func marked(set []bool) []int {
	var out []int
	for i, ok := range set {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// planarEdges runs a fresh engine on the subgraph formed by edges.
func planarEdges(edges []*core.Edge, listStorage bool) (bool, error) {
	opts := DefaultOptions()
	opts.ListStorage = listStorage
	eng, err := newEngine(core.NewView(nil, edges), opts)
	if err != nil {
		return false, err
	}

	return eng.run()
}

// minimize shrinks a non-planar edge set to a minimal non-planar one.
//
// Each round binary-searches the shortest prefix P of the remaining
// candidates whose union with the kept set is non-planar, keeps the last
// edge of P and drops everything after it. Every kept edge is therefore
// essential, and a minimal non-planar graph is a Kuratowski subdivision.
// Complexity: O(k · log E · (V + E)) for a witness of k edges.
func minimize(edges []*core.Edge, planar func([]*core.Edge) (bool, error)) ([]*core.Edge, error) {
	var kept []*core.Edge
	rest := edges
	with := func(prefix int) []*core.Edge {
		return append(slices.Clip(kept), rest[:prefix]...)
	}
	for {
		ok, err := planar(kept)
		if err != nil {
			return nil, err
		}
		if !ok {
			return kept, nil
		}
		if len(rest) == 0 {
			return nil, fmt.Errorf("minimize: candidate set is planar: %w", ErrCorrupt)
		}

		lo, hi := 1, len(rest)
		for lo < hi {
			mid := (lo + hi) / 2
			if ok, err = planar(with(mid)); err != nil {
				return nil, err
			}
			if ok {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		kept = append(kept, rest[lo-1])
		rest = rest[:lo-1]
	}
}
