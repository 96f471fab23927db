package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-planar/builder"
	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/embedding"
	"github.com/katalvlaran/lvlath-planar/planarity"
	"github.com/katalvlaran/lvlath-planar/traverse"
)

// embed builds g with con and returns its planar embedding.
func embed(t testing.TB, con builder.Constructor) *embedding.Embedding {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, con)
	require.NoError(t, err)
	m, err := planarity.Embed(g)
	require.NoError(t, err)

	return m
}

// recorder collects the faces reported through a Visitor.
type recorder struct {
	faces    [][]embedding.DirectedEdge
	firsts   []embedding.DirectedEdge
	vertices []string
	begun    int
	ended    int
	closed   int
}

func (r *recorder) visitor() traverse.Visitor {
	return traverse.Visitor{
		BeginTraversal: func() { r.begun++ },
		BeginFace: func(first embedding.DirectedEdge) {
			r.faces = append(r.faces, nil)
			r.firsts = append(r.firsts, first)
		},
		NextVertex: func(v string) { r.vertices = append(r.vertices, v) },
		NextEdge: func(e embedding.DirectedEdge) {
			last := len(r.faces) - 1
			r.faces[last] = append(r.faces[last], e)
		},
		EndFace: func(first embedding.DirectedEdge) {
			if r.firsts[len(r.firsts)-1] == first {
				r.closed++
			}
		},
		EndTraversal: func() { r.ended++ },
	}
}

type dartKey struct {
	edge    string
	forward bool
}

// checkCover asserts that the recorded faces are exactly the faces of m and
// that each directed edge was reported once, in closed walks.
func checkCover(t *testing.T, m *embedding.Embedding, r *recorder) {
	t.Helper()
	assert.Equal(t, 1, r.begun)
	assert.Equal(t, 1, r.ended)
	assert.Equal(t, m.FaceCount(), len(r.faces))
	assert.Equal(t, len(r.faces), r.closed)

	seen := make(map[dartKey]int)
	total := 0
	for k, walk := range r.faces {
		require.NotEmpty(t, walk)
		assert.Equal(t, r.firsts[k], walk[0], "face %d must start at its first edge", k)
		for i, e := range walk {
			seen[dartKey{e.Edge, e.Forward}]++
			assert.Equal(t, e.Target, walk[(i+1)%len(walk)].Source, "face walk must close")
		}
		total += len(walk)
	}
	assert.Equal(t, 2*m.EdgeCount(), total)
	for k, c := range seen {
		assert.Equal(t, 1, c, "dart %v", k)
	}
	assert.Len(t, r.vertices, total)

	want := make(map[int]int)
	for _, f := range m.Faces() {
		walk, err := m.FaceEdges(f)
		require.NoError(t, err)
		want[len(walk)]++
	}
	got := make(map[int]int)
	for _, walk := range r.faces {
		got[len(walk)]++
	}
	assert.Equal(t, want, got)
}

func TestBreadthFirst_Solids(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		con  builder.Constructor
	}{
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron)},
		{"Cube", builder.PlatonicSolid(builder.Cube)},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron)},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron)},
		{"Grid(4,5)", builder.Grid(4, 5)},
		{"Wheel(7)", builder.Wheel(7)},
		{"Path(5)", builder.Path(5)},
		{"Star(6)", builder.Star(6)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := embed(t, tc.con)
			var r recorder
			require.NoError(t, traverse.BreadthFirst(m, r.visitor()))
			checkCover(t, m, &r)
		})
	}
}

func TestBreadthFirst_StartsAtBoundaryAndSpreads(t *testing.T) {
	t.Parallel()

	m := embed(t, builder.Grid(5, 5))
	var r recorder
	require.NoError(t, traverse.BreadthFirst(m, r.visitor()))

	f, ok := m.Boundary()
	require.True(t, ok)
	outer, err := m.FaceEdges(f)
	require.NoError(t, err)
	assert.Equal(t, outer, r.faces[0])

	// Every later face shares an edge with a face reported before it.
	reported := make(map[string]bool)
	for i, walk := range r.faces {
		if i > 0 {
			touches := false
			for _, e := range walk {
				touches = touches || reported[e.Edge]
			}
			assert.True(t, touches, "face %d is not adjacent to an earlier face", i)
		}
		for _, e := range walk {
			reported[e.Edge] = true
		}
	}
}

func TestBreadthFirst_Disconnected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("lonely"))
	m, err := planarity.Embed(g)
	require.NoError(t, err)

	var r recorder
	require.NoError(t, traverse.BreadthFirst(m, r.visitor()))
	checkCover(t, m, &r)
	assert.Len(t, r.faces, 4)
	assert.NotContains(t, r.vertices, "lonely")
}

func TestBreadthFirst_LoopsAndParallelEdges(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, e := range [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}, {"a", "a"}, {"c", "a"}, {"c", "c"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	m, err := planarity.Embed(g)
	require.NoError(t, err)

	var r recorder
	require.NoError(t, traverse.BreadthFirst(m, r.visitor()))
	checkCover(t, m, &r)
}

func TestBreadthFirst_EmptyVisitorAndErrors(t *testing.T) {
	t.Parallel()

	m := embed(t, builder.Cycle(4))
	assert.NoError(t, traverse.BreadthFirst(m, traverse.Visitor{}))
	assert.NoError(t, traverse.BreadthFirst(embedding.New(), traverse.Visitor{}))
	assert.ErrorIs(t, traverse.BreadthFirst(nil, traverse.Visitor{}), traverse.ErrNilEmbedding)
}

// checkCanonical asserts the canonical-order properties of order on m.
func checkCanonical(t *testing.T, m *embedding.Embedding, order []string) {
	t.Helper()
	require.Len(t, order, m.VertexCount())
	rank := make(map[string]int, len(order))
	for k, v := range order {
		rank[v] = k
	}
	require.Len(t, rank, len(order), "order must be a permutation")

	f, ok := m.Boundary()
	require.True(t, ok)
	base, err := m.FaceEdges(f)
	require.NoError(t, err)
	assert.Equal(t, base[0].Source, order[0])
	assert.Equal(t, base[0].Target, order[1])

	for k := 2; k < len(order); k++ {
		rot, err := m.Rotation(order[k])
		require.NoError(t, err)
		earlier, runs := 0, 0
		for i, w := range rot {
			before := rank[w] < k
			if before {
				earlier++
			}
			if before && rank[rot[(i+len(rot)-1)%len(rot)]] >= k {
				runs++
			}
		}
		assert.GreaterOrEqual(t, earlier, 2, "%s sees too few settled vertices", order[k])
		if earlier < len(rot) {
			assert.Equal(t, 1, runs, "%s: settled neighbours are not contiguous", order[k])
		}
	}
}

func TestCanonicalOrder_Triangulations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		con  builder.Constructor
	}{
		{"Triangle", builder.Cycle(3)},
		{"K4", builder.Complete(4)},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron)},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := embed(t, tc.con)
			order, err := traverse.CanonicalOrder(m)
			require.NoError(t, err)
			checkCanonical(t, m, order)
		})
	}
}

func TestCanonicalOrder_WheelWithRimBoundary(t *testing.T) {
	t.Parallel()

	m := embed(t, builder.Wheel(8))
	for _, f := range m.Faces() {
		walk, err := m.FaceEdges(f)
		require.NoError(t, err)
		if len(walk) == 7 {
			require.NoError(t, m.SetBoundary(walk[0].Source, walk[0].Target))
		}
	}
	order, err := traverse.CanonicalOrder(m)
	require.NoError(t, err)
	checkCanonical(t, m, order)
}

func TestCanonical_SettledFacesThenBoundary(t *testing.T) {
	t.Parallel()

	m := embed(t, builder.PlatonicSolid(builder.Icosahedron))
	order, err := traverse.CanonicalOrder(m)
	require.NoError(t, err)
	rank := make(map[string]int, len(order))
	for k, v := range order {
		rank[v] = k
	}

	var r recorder
	require.NoError(t, traverse.Canonical(m, r.visitor()))
	checkCover(t, m, &r)

	f, _ := m.Boundary()
	outer, err := m.FaceEdges(f)
	require.NoError(t, err)
	assert.Equal(t, outer, r.faces[len(r.faces)-1])

	prev := -1
	for _, walk := range r.faces[:len(r.faces)-1] {
		last := 0
		for _, e := range walk {
			last = max(last, rank[e.Source])
		}
		assert.GreaterOrEqual(t, last, prev, "a face was reported before its last vertex settled")
		prev = last
	}
}

func TestCanonical_Rejects(t *testing.T) {
	t.Parallel()

	twoTriangles := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, err := twoTriangles.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	split, err := planarity.Embed(twoTriangles)
	require.NoError(t, err)

	doubled := core.NewGraph(core.WithMultiEdges())
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "b"}} {
		_, err = doubled.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	parallel, err := planarity.Embed(doubled)
	require.NoError(t, err)

	// K4 with a rotation that does not close into a sphere.
	torus, err := embedding.FromRotation(
		[]string{"0", "1", "2", "3"},
		[]embedding.Edge{
			{ID: "e1", Source: "0", Target: "1"}, {ID: "e2", Source: "0", Target: "2"},
			{ID: "e3", Source: "0", Target: "3"}, {ID: "e4", Source: "1", Target: "2"},
			{ID: "e5", Source: "1", Target: "3"}, {ID: "e6", Source: "2", Target: "3"},
		},
		map[string][]string{
			"0": {"e1", "e2", "e3"}, "1": {"e1", "e4", "e5"},
			"2": {"e2", "e4", "e6"}, "3": {"e3", "e5", "e6"},
		},
	)
	require.NoError(t, err)
	require.NotEqual(t, 2, torus.VertexCount()-torus.EdgeCount()+torus.FaceCount())

	tests := []struct {
		name string
		m    *embedding.Embedding
	}{
		{"Cube", embed(t, builder.PlatonicSolid(builder.Cube))},
		{"Grid(3,3)", embed(t, builder.Grid(3, 3))},
		{"Path(3)", embed(t, builder.Path(3))},
		{"Disconnected", split},
		{"ParallelEdge", parallel},
		{"Torus", torus},
	}
	for _, tc := range tests {
		_, err := traverse.CanonicalOrder(tc.m)
		assert.ErrorIs(t, err, traverse.ErrNotTriangulated, tc.name)
		assert.ErrorIs(t, traverse.Canonical(tc.m, traverse.Visitor{}), traverse.ErrNotTriangulated, tc.name)
	}

	_, err = traverse.CanonicalOrder(nil)
	assert.ErrorIs(t, err, traverse.ErrNilEmbedding)
	assert.ErrorIs(t, traverse.Canonical(nil, traverse.Visitor{}), traverse.ErrNilEmbedding)
}
