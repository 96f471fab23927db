package traverse

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvlath-planar/embedding"
)

// contour peels an internally triangulated embedding from the outside in.
// Vertices are dense indices into ids; the contour is the boundary cycle of
// the vertices not yet removed, linked by cnext/cprev in face-walk order.
type contour struct {
	ids    []string
	index  map[string]int
	nbrs   [][]int // rotation neighbours
	v1, v2 int     // the base edge, never removed

	removed   []bool
	onContour []bool
	fresh     []bool
	chords    []int // contour chords incident to each contour vertex
	cnext     []int
	cprev     []int
}

// newContour checks that m is connected, simple and internally triangulated
// with a simple boundary cycle, and seeds the contour with that cycle.
func newContour(m *embedding.Embedding) (*contour, error) {
	n := m.VertexCount()
	if n < 3 {
		return nil, fmt.Errorf("%d vertices: %w", n, ErrNotTriangulated)
	}
	if k := m.Components(); k != 1 {
		return nil, fmt.Errorf("%d components: %w", k, ErrNotTriangulated)
	}
	if chi := n - m.EdgeCount() + m.FaceCount(); chi != 2 {
		return nil, fmt.Errorf("Euler characteristic %d: %w", chi, ErrNotTriangulated)
	}

	c := &contour{
		ids:       m.Vertices(),
		index:     make(map[string]int, n),
		nbrs:      make([][]int, n),
		removed:   make([]bool, n),
		onContour: make([]bool, n),
		fresh:     make([]bool, n),
		chords:    make([]int, n),
		cnext:     make([]int, n),
		cprev:     make([]int, n),
	}
	for i, id := range c.ids {
		c.index[id] = i
	}

	seen := make([]int, n)
	for i, id := range c.ids {
		rot, err := m.Rotation(id)
		if err != nil {
			return nil, err
		}
		c.nbrs[i] = make([]int, len(rot))
		for k, w := range rot {
			j := c.index[w]
			if j == i || seen[j] == i+1 {
				return nil, fmt.Errorf("vertex %q: loop or parallel edge: %w", id, ErrNotTriangulated)
			}
			seen[j] = i + 1
			c.nbrs[i][k] = j
		}
	}

	boundary, ok := m.Boundary()
	if !ok {
		return nil, fmt.Errorf("no boundary face: %w", ErrNotTriangulated)
	}
	for _, f := range m.Faces() {
		walk, err := m.FaceEdges(f)
		if err != nil {
			return nil, err
		}
		if f == boundary {
			if err = c.seed(walk); err != nil {
				return nil, err
			}
			continue
		}
		if len(walk) != 3 {
			return nil, fmt.Errorf("face %d has %d edges: %w", f, len(walk), ErrNotTriangulated)
		}
	}

	return c, nil
}

// seed installs the boundary walk as the initial contour and counts its chords.
func (c *contour) seed(walk []embedding.DirectedEdge) error {
	if len(walk) < 3 {
		return fmt.Errorf("boundary has %d edges: %w", len(walk), ErrNotTriangulated)
	}
	for _, e := range walk {
		x, y := c.index[e.Source], c.index[e.Target]
		if c.onContour[x] {
			return fmt.Errorf("boundary revisits %q: %w", e.Source, ErrNotTriangulated)
		}
		c.onContour[x] = true
		c.cnext[x], c.cprev[y] = y, x
	}
	c.v1, c.v2 = c.index[walk[0].Source], c.index[walk[0].Target]

	for _, e := range walk {
		x := c.index[e.Source]
		for _, y := range c.nbrs[x] {
			if c.onContour[y] && y != c.cnext[x] && y != c.cprev[x] {
				c.chords[x]++
			}
		}
	}

	return nil
}

// eligible reports whether v may be removed next.
func (c *contour) eligible(v int) bool {
	return c.onContour[v] && !c.removed[v] && c.chords[v] == 0 && v != c.v1 && v != c.v2
}

// pop returns the most recently pushed vertex that is still eligible.
func (c *contour) pop(stack *arraystack.Stack) (int, bool) {
	for !stack.Empty() {
		x, _ := stack.Pop()
		if v := x.(int); c.eligible(v) {
			return v, true
		}
	}

	return none, false
}

// none marks an absent vertex index.
const none = -1

// remove takes v off the contour and splices in its inner neighbours, which
// lie between its contour successor and predecessor in v's rotation.
func (c *contour) remove(v int, stack *arraystack.Stack) error {
	a, b := c.cprev[v], c.cnext[v]
	rot := c.nbrs[v]
	start := none
	for k, w := range rot {
		if w == b {
			start = k
			break
		}
	}
	if start == none {
		return fmt.Errorf("vertex %q: contour neighbour missing: %w", c.ids[v], ErrNotTriangulated)
	}

	var inner []int
	closed := false
	for k := 1; k < len(rot); k++ {
		w := rot[(start+k)%len(rot)]
		if w == a {
			closed = true
			break
		}
		if c.removed[w] || c.onContour[w] {
			return fmt.Errorf("vertex %q: chord to %q: %w", c.ids[v], c.ids[w], ErrNotTriangulated)
		}
		inner = append(inner, w)
	}
	if !closed {
		return fmt.Errorf("vertex %q: open fan: %w", c.ids[v], ErrNotTriangulated)
	}

	// With no inner neighbours the chord a-b becomes a contour edge.
	if len(inner) == 0 && c.cnext[b] != a {
		c.chords[a]--
		c.chords[b]--
	}

	c.removed[v], c.onContour[v] = true, false
	prev := a
	for k := len(inner) - 1; k >= 0; k-- {
		w := inner[k]
		c.onContour[w], c.fresh[w] = true, true
		c.cnext[prev], c.cprev[w] = w, prev
		prev = w
	}
	c.cnext[prev], c.cprev[b] = b, prev

	for _, w := range inner {
		for _, y := range c.nbrs[w] {
			if !c.onContour[y] || y == c.cprev[w] || y == c.cnext[w] {
				continue
			}
			c.chords[w]++
			if !c.fresh[y] {
				c.chords[y]++
			}
		}
	}

	stack.Push(a)
	for _, w := range inner {
		c.fresh[w] = false
		if c.chords[w] == 0 {
			stack.Push(w)
		}
	}
	stack.Push(b)

	return nil
}

// peel removes vertices until only the base edge is left and returns the
// canonical order: v1, v2, then the removals reversed.
func (c *contour) peel() ([]int, error) {
	stack := arraystack.New()
	for x := c.v1; ; {
		if c.eligible(x) {
			stack.Push(x)
		}
		if x = c.cnext[x]; x == c.v1 {
			break
		}
	}

	n := len(c.ids)
	order := make([]int, n)
	order[0], order[1] = c.v1, c.v2
	for k := n - 1; k >= 2; k-- {
		v, ok := c.pop(stack)
		if !ok {
			return nil, fmt.Errorf("no removable contour vertex with %d left: %w", k+1, ErrNotTriangulated)
		}
		if err := c.remove(v, stack); err != nil {
			return nil, err
		}
		order[k] = v
	}

	return order, nil
}

// CanonicalOrder returns a canonical vertex order v1, …, vn of m: v1v2 is a
// boundary edge, every prefix v1…vk induces a 2-connected graph whose outer
// cycle contains v1v2, and each later vertex sees a contiguous run of at
// least two vertices of that cycle.
//
// m must be connected and simple, its boundary a simple cycle and every
// other face a triangle; otherwise ErrNotTriangulated is returned.
// Complexity: O(V + E).
func CanonicalOrder(m *embedding.Embedding) ([]string, error) {
	if m == nil {
		return nil, fmt.Errorf("CanonicalOrder: %w", ErrNilEmbedding)
	}
	c, err := newContour(m)
	if err != nil {
		return nil, fmt.Errorf("CanonicalOrder: %w", err)
	}
	order, err := c.peel()
	if err != nil {
		return nil, fmt.Errorf("CanonicalOrder: %w", err)
	}
	out := make([]string, len(order))
	for k, v := range order {
		out[k] = c.ids[v]
	}

	return out, nil
}

// Canonical reports the faces of m in canonical order: settling the vertices
// one by one, each triangle is reported as soon as its last vertex is
// settled. The boundary face is reported last.
// Requirements and errors are those of CanonicalOrder.
func Canonical(m *embedding.Embedding, vis Visitor) error {
	if m == nil {
		return fmt.Errorf("Canonical: %w", ErrNilEmbedding)
	}
	c, err := newContour(m)
	if err != nil {
		return fmt.Errorf("Canonical: %w", err)
	}
	order, err := c.peel()
	if err != nil {
		return fmt.Errorf("Canonical: %w", err)
	}
	rank := make([]int, len(order))
	for k, v := range order {
		rank[v] = k
	}

	// settled[k] holds the triangles completed by the k-th vertex.
	settled := make([][][]embedding.DirectedEdge, len(order))
	var outer []embedding.DirectedEdge
	for _, f := range m.Faces() {
		walk, err := m.FaceEdges(f)
		if err != nil {
			return fmt.Errorf("Canonical: %w", err)
		}
		if m.IsBoundary(f) {
			outer = walk
			continue
		}
		last := 0
		for _, e := range walk {
			last = max(last, rank[c.index[e.Source]])
		}
		settled[last] = append(settled[last], walk)
	}

	vis.beginTraversal()
	for _, faces := range settled {
		for _, walk := range faces {
			emitFace(&vis, walk)
		}
	}
	emitFace(&vis, outer)
	vis.endTraversal()

	return nil
}

func emitFace(vis *Visitor, walk []embedding.DirectedEdge) {
	vis.beginFace(walk[0])
	for _, e := range walk {
		vis.step(e)
	}
	vis.endFace(walk[0])
}
