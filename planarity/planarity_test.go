package planarity_test

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-planar/builder"
	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/dfs"
	"github.com/katalvlaran/lvlath-planar/embedding"
	"github.com/katalvlaran/lvlath-planar/planarity"
)

// build runs one constructor into a fresh simple graph.
func build(t testing.TB, con builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, con)
	require.NoError(t, err)

	return g
}

// rawSource is a Source that passes its lists through untouched.
type rawSource struct {
	vertices []string
	edges    []*core.Edge
}

func (s rawSource) Vertices() []string  { return s.vertices }
func (s rawSource) Edges() []*core.Edge { return s.edges }

func edge(id, from, to string) *core.Edge { return &core.Edge{ID: id, From: from, To: to} }

// euler checks V - E + F = 2C on an embedding without isolated vertices.
func euler(t *testing.T, m *embedding.Embedding) {
	t.Helper()
	assert.Equal(t, 2*m.Components(), m.VertexCount()-m.EdgeCount()+m.FaceCount())
}

// checkEmbedding verifies that a planar answer yields a sound mesh.
func checkEmbedding(t *testing.T, g core.Source, tester *planarity.Tester) {
	t.Helper()
	m, err := tester.Embedding()
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, len(g.Vertices()), m.VertexCount())
	assert.Equal(t, len(g.Edges()), m.EdgeCount())
	euler(t, m)
}

// checkWitness verifies that ids form a non-planar subgraph of g in which
// every edge is essential.
func checkWitness(t *testing.T, g core.Source, ids []string) {
	t.Helper()
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	sub := core.EdgeInduced(g, func(e *core.Edge) bool { return set[e.ID] })
	ok, err := planarity.IsPlanar(sub)
	require.NoError(t, err)
	require.False(t, ok, "witness must be non-planar")

	for _, drop := range ids {
		less := core.EdgeInduced(sub, func(e *core.Edge) bool { return e.ID != drop })
		ok, err = planarity.IsPlanar(less)
		require.NoError(t, err)
		assert.True(t, ok, "edge %s is not essential", drop)
	}
}

func TestIsPlanar_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor
		want bool
	}{
		{"K1", builder.Complete(1), true},
		{"K4", builder.Complete(4), true},
		{"K5", builder.Complete(5), false},
		{"K6", builder.Complete(6), false},
		{"K2,5", builder.CompleteBipartite(2, 5), true},
		{"K3,3", builder.CompleteBipartite(3, 3), false},
		{"K3,4", builder.CompleteBipartite(3, 4), false},
		{"Path", builder.Path(7), true},
		{"Star", builder.Star(9), true},
		{"Cycle", builder.Cycle(8), true},
		{"Wheel", builder.Wheel(9), true},
		{"Grid", builder.Grid(5, 6), true},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), true},
		{"Cube", builder.PlatonicSolid(builder.Cube), true},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), true},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron), true},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), true},
		{"Petersen", builder.Petersen(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.con)
			for _, storage := range [][]planarity.Option{nil, {planarity.WithListStorage()}} {
				tester, err := planarity.New(g, storage...)
				require.NoError(t, err)
				got, err := tester.IsPlanar()
				require.NoError(t, err)
				require.Equal(t, tc.want, got)
				if got && g.EdgeCount() > 0 {
					checkEmbedding(t, g, tester)
				}
			}
		})
	}
}

func TestIsPlanar_Cached(t *testing.T) {
	tester, err := planarity.New(build(t, builder.Complete(4)))
	require.NoError(t, err)
	first, err := tester.IsPlanar()
	require.NoError(t, err)
	second, err := tester.IsPlanar()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKuratowski_K5(t *testing.T) {
	g := build(t, builder.Complete(5))
	ids, err := planarity.Kuratowski(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8", "e9", "e10"}, ids)

	kind, err := planarity.Classify(g, ids)
	require.NoError(t, err)
	assert.Equal(t, planarity.KindK5, kind)
}

func TestKuratowski_K33(t *testing.T) {
	g := build(t, builder.CompleteBipartite(3, 3))
	for _, storage := range [][]planarity.Option{nil, {planarity.WithListStorage()}} {
		tester, err := planarity.New(g, append(storage, planarity.WithKuratowski())...)
		require.NoError(t, err)
		ok, err := tester.IsPlanar()
		require.NoError(t, err)
		require.False(t, ok)

		ids, err := tester.KuratowskiSubgraph()
		require.NoError(t, err)
		assert.Len(t, ids, 9)
		kind, err := planarity.Classify(g, ids)
		require.NoError(t, err)
		assert.Equal(t, planarity.KindK33, kind)

		// cached, and a copy
		again, err := tester.KuratowskiSubgraph()
		require.NoError(t, err)
		assert.Equal(t, ids, again)
		again[0] = "mutated"
		third, err := tester.KuratowskiSubgraph()
		require.NoError(t, err)
		assert.Equal(t, ids[0], third[0])
	}
}

func TestKuratowski_Petersen(t *testing.T) {
	g := build(t, builder.Petersen())
	ids, err := planarity.Kuratowski(g)
	require.NoError(t, err)
	checkWitness(t, g, ids)

	kind, err := planarity.Classify(g, ids)
	require.NoError(t, err)
	assert.Equal(t, planarity.KindK33, kind, "the Petersen graph has no K5 subdivision")
}

func TestKuratowski_SubdividedInsidePlanarGraph(t *testing.T) {
	// K3,3 with one edge subdivided twice, hung off a planar grid.
	g := build(t, builder.Grid(3, 3))
	left, right := []string{"a", "b", "c"}, []string{"x", "y", "z"}
	for _, u := range left {
		for _, v := range right {
			if u == "a" && v == "x" {
				continue
			}
			_, err := g.AddEdge(u, v)
			require.NoError(t, err)
		}
	}
	for _, p := range [][2]string{{"a", "s1"}, {"s1", "s2"}, {"s2", "x"}, {"2,2", "a"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	ids, err := planarity.Kuratowski(g)
	require.NoError(t, err)
	assert.Len(t, ids, 11)
	checkWitness(t, g, ids)
	kind, err := planarity.Classify(g, ids)
	require.NoError(t, err)
	assert.Equal(t, planarity.KindK33, kind)
}

func TestKuratowski_IgnoresLoopsAndParallels(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()}, nil,
		builder.Complete(5),
	)
	require.NoError(t, err)
	for _, p := range [][2]string{{"0", "0"}, {"0", "1"}, {"2", "3"}, {"4", "4"}} {
		_, err = g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	ids, err := planarity.Kuratowski(g)
	require.NoError(t, err)
	assert.Len(t, ids, 10)
	checkWitness(t, g, ids)
	kind, err := planarity.Classify(g, ids)
	require.NoError(t, err)
	assert.Equal(t, planarity.KindK5, kind)
}

func TestEmbedding_LoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "a"}, {"a", "b"}, {"c", "d"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	for _, storage := range [][]planarity.Option{nil, {planarity.WithListStorage()}} {
		tester, err := planarity.New(g, storage...)
		require.NoError(t, err)
		ok, err := tester.IsPlanar()
		require.NoError(t, err)
		require.True(t, ok)

		around, err := tester.EdgesOf("a")
		require.NoError(t, err)
		assert.Len(t, around, 5, "a loop contributes both of its ends")
		loops := 0
		for _, id := range around {
			if id == "e4" {
				loops++
			}
		}
		assert.Equal(t, 2, loops)

		checkEmbedding(t, g, tester)
	}
}

func TestRotation_CoversEveryEdgeEndOnce(t *testing.T) {
	g := build(t, builder.PlatonicSolid(builder.Icosahedron))
	tester, err := planarity.New(g)
	require.NoError(t, err)
	ok, err := tester.IsPlanar()
	require.NoError(t, err)
	require.True(t, ok)

	rot, err := tester.Rotation()
	require.NoError(t, err)
	require.Len(t, rot, g.VertexCount())

	ends := make(map[string]int)
	for v, ids := range rot {
		around, err := tester.EdgesOf(v)
		require.NoError(t, err)
		assert.Equal(t, ids, around)
		deg, err := g.Degree(v)
		require.NoError(t, err)
		assert.Len(t, ids, deg)
		for _, id := range ids {
			ends[id]++
		}
	}
	for _, e := range g.Edges() {
		assert.Equal(t, 2, ends[e.ID], e.ID)
	}

	m, err := tester.Embedding()
	require.NoError(t, err)
	assert.Equal(t, 20, m.FaceCount())
	for _, f := range m.Faces() {
		vs, err := m.FaceVertices(f)
		require.NoError(t, err)
		assert.Len(t, vs, 3, "every icosahedron face is a triangle")
	}
}

func TestEmbed_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("lonely"))

	m, err := planarity.Embed(g)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount(), "each triangle owns an inner and an outer face")

	tester, err := planarity.New(g)
	require.NoError(t, err)
	_, err = tester.IsPlanar()
	require.NoError(t, err)
	around, err := tester.EdgesOf("lonely")
	require.NoError(t, err)
	assert.Empty(t, around)
}

func TestIsPlanar_RandomGraphsAgree(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := build(t, builder.RandomSparse(14, 0.25), builder.WithSeed(seed))
		name := "seed" + strconv.FormatInt(seed, 10)

		tree, err := planarity.New(g, planarity.WithKuratowski())
		require.NoError(t, err, name)
		list, err := planarity.New(g, planarity.WithKuratowski(), planarity.WithListStorage())
		require.NoError(t, err, name)
		a, err := tree.IsPlanar()
		require.NoError(t, err, name)
		b, err := list.IsPlanar()
		require.NoError(t, err, name)
		require.Equal(t, a, b, name)

		if a {
			m, err := tree.Embedding()
			require.NoError(t, err, name)
			require.NoError(t, m.Validate(), name)
			continue
		}
		ids, err := tree.KuratowskiSubgraph()
		require.NoError(t, err, name)
		checkWitness(t, g, ids)
		kind, err := planarity.Classify(g, ids)
		require.NoError(t, err, name)
		assert.NotEqual(t, planarity.KindUnknown, kind, name)
	}
}

func TestWitness(t *testing.T) {
	tester, err := planarity.New(build(t, builder.Complete(5)))
	require.NoError(t, err)
	_, _, _, ok := tester.Witness()
	assert.False(t, ok, "no witness before the run")

	planar, err := tester.IsPlanar()
	require.NoError(t, err)
	require.False(t, planar)
	v, x, y, ok := tester.Witness()
	require.True(t, ok)
	assert.NotEmpty(t, v)
	assert.NotEqual(t, v, x)
	assert.NotEqual(t, v, y)

	tester, err = planarity.New(build(t, builder.Complete(4)))
	require.NoError(t, err)
	_, err = tester.IsPlanar()
	require.NoError(t, err)
	_, _, _, ok = tester.Witness()
	assert.False(t, ok)
}

func TestTester_StateErrors(t *testing.T) {
	k4 := build(t, builder.Complete(4))
	k5 := build(t, builder.Complete(5))

	_, err := planarity.New(nil)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)

	tester, err := planarity.New(k4)
	require.NoError(t, err)
	_, err = tester.EdgesOf("0")
	assert.ErrorIs(t, err, planarity.ErrNotRun)
	_, err = tester.Rotation()
	assert.ErrorIs(t, err, planarity.ErrNotRun)
	_, err = tester.KuratowskiSubgraph()
	assert.ErrorIs(t, err, planarity.ErrIsolationDisabled)

	_, err = tester.IsPlanar()
	require.NoError(t, err)
	_, err = tester.EdgesOf("missing")
	assert.ErrorIs(t, err, planarity.ErrUnknownVertex)

	iso, err := planarity.New(k4, planarity.WithKuratowski())
	require.NoError(t, err)
	_, err = iso.KuratowskiSubgraph()
	assert.ErrorIs(t, err, planarity.ErrNotRun)
	_, err = iso.IsPlanar()
	require.NoError(t, err)
	_, err = iso.KuratowskiSubgraph()
	assert.ErrorIs(t, err, planarity.ErrPlanar)

	nonPlanar, err := planarity.New(k5)
	require.NoError(t, err)
	_, err = nonPlanar.IsPlanar()
	require.NoError(t, err)
	_, err = nonPlanar.EdgesOf("0")
	assert.ErrorIs(t, err, planarity.ErrNotPlanar)
	_, err = nonPlanar.Embedding()
	assert.ErrorIs(t, err, planarity.ErrNotPlanar)

	_, err = planarity.Embed(k5)
	assert.ErrorIs(t, err, planarity.ErrNotPlanar)
	_, err = planarity.Kuratowski(k4)
	assert.ErrorIs(t, err, planarity.ErrPlanar)
	_, err = planarity.IsPlanar(nil)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)
}

func TestNew_InvalidSource(t *testing.T) {
	tests := []struct {
		name string
		src  rawSource
		want error
	}{
		{
			name: "duplicate vertex",
			src:  rawSource{vertices: []string{"a", "a"}},
			want: planarity.ErrDuplicateVertex,
		},
		{
			name: "duplicate edge",
			src: rawSource{
				vertices: []string{"a", "b"},
				edges:    []*core.Edge{edge("e1", "a", "b"), edge("e1", "b", "a")},
			},
			want: planarity.ErrDuplicateEdge,
		},
		{
			name: "unknown endpoint",
			src: rawSource{
				vertices: []string{"a"},
				edges:    []*core.Edge{edge("e1", "a", "b")},
			},
			want: planarity.ErrUnknownVertex,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planarity.New(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithPreprocessor(t *testing.T) {
	g := build(t, builder.Wheel(6))

	boom := errors.New("boom")
	_, err := planarity.New(g, planarity.WithPreprocessor(func(core.Source) (*dfs.Result, error) {
		return nil, boom
	}))
	assert.ErrorIs(t, err, boom)

	_, err = planarity.New(g, planarity.WithPreprocessor(func(core.Source) (*dfs.Result, error) {
		return &dfs.Result{Order: []string{"0"}}, nil
	}))
	assert.ErrorIs(t, err, planarity.ErrBadPreprocessing)

	// A numbering whose parent edge does not join the vertex and its parent.
	_, err = planarity.New(g, planarity.WithPreprocessor(func(src core.Source) (*dfs.Result, error) {
		res, err := dfs.Number(src)
		if err != nil {
			return nil, err
		}
		res.ParentEdge[res.Order[2]] = res.ParentEdge[res.Order[1]]
		return res, nil
	}))
	assert.ErrorIs(t, err, planarity.ErrBadPreprocessing)

	visits := 0
	tester, err := planarity.New(g, planarity.WithPreprocessor(func(src core.Source) (*dfs.Result, error) {
		return dfs.Number(src, dfs.WithOnVisit(func(string, int) error {
			visits++
			return nil
		}))
	}), planarity.WithPreprocessor(nil))
	require.NoError(t, err)
	assert.Equal(t, 6, visits, "a nil preprocessor keeps the previous one")
	ok, err := tester.IsPlanar()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	tester, err := planarity.New(build(t, builder.Complete(5)), planarity.WithLogger(logger), planarity.WithLogger(nil))
	require.NoError(t, err)
	_, err = tester.IsPlanar()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "planarity run")
	assert.Contains(t, buf.String(), "walkdown blocked")
}

func TestClassify(t *testing.T) {
	g := build(t, builder.Complete(4))

	kind, err := planarity.Classify(g, []string{"e1", "e2", "e4"})
	require.NoError(t, err)
	assert.Equal(t, planarity.KindUnknown, kind, "a triangle is neither shape")

	_, err = planarity.Classify(g, []string{"e99"})
	assert.ErrorIs(t, err, planarity.ErrEdgeNotFound)
	_, err = planarity.Classify(nil, nil)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)

	assert.Equal(t, "K5", planarity.KindK5.String())
	assert.Equal(t, "K3,3", planarity.KindK33.String())
	assert.Equal(t, "unknown", planarity.KindUnknown.String())
}
