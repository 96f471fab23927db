package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/dfs"
)

// buildChain creates a path graph N0-N1-…-N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

func TestNumber_NilGraph(t *testing.T) {
	res, err := dfs.Number(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestNumber_Chain(t *testing.T) {
	res, err := dfs.Number(buildChain(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, res.Order)
	assert.Equal(t, []string{"N0"}, res.Roots)
	for i, id := range res.Order {
		assert.Equal(t, i, res.Number[id])
		assert.Equal(t, i, res.LowPoint[id], "no back edges on a path")
	}
	assert.True(t, res.IsRoot("N0"))
	assert.Equal(t, "N2", res.Parent["N3"])
	assert.Equal(t, "e3", res.ParentEdge["N3"])
	_, hasEdge := res.ParentEdge["N0"]
	assert.False(t, hasEdge)
}

// TestNumber_LowPoints checks the classic triangle-with-tail:
//
//	a - b - c - a, c - d
func TestNumber_LowPoints(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")
	_, _ = g.AddEdge("c", "d")

	res, err := dfs.Number(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Order)
	assert.Equal(t, 0, res.LowPoint["a"])
	assert.Equal(t, 0, res.LowPoint["b"])
	assert.Equal(t, 0, res.LowPoint["c"])
	assert.Equal(t, 3, res.LowPoint["d"])

	assert.Equal(t, 0, res.LeastAncestor["b"])
	assert.Equal(t, 0, res.LeastAncestor["c"], "back edge c-a")
	assert.Equal(t, 2, res.LeastAncestor["d"])
}

func TestNumber_ParallelEdgeIsBackEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "c")

	res, err := dfs.Number(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.LeastAncestor["c"])
	assert.Equal(t, 1, res.LowPoint["c"])
	assert.Equal(t, "e2", res.ParentEdge["c"])
}

func TestNumber_Forest(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("x", "y")
	require.NoError(t, g.AddVertex("lonely"))

	res, err := dfs.Number(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "lonely"}, res.Roots)
	assert.Equal(t, 2, res.Number["x"])
	assert.Equal(t, 4, res.Number["lonely"])
}

func TestNumber_UnknownEndpoint(t *testing.T) {
	src := core.NewView(nil, []*core.Edge{{ID: "e1", From: "a", To: "b"}})
	// NewView adds the endpoints, so craft a broken source by hand.
	_, err := dfs.Number(brokenSource{src})
	assert.ErrorIs(t, err, dfs.ErrUnknownVertex)
}

type brokenSource struct{ core.Source }

func (brokenSource) Vertices() []string { return []string{"a"} }

func TestNumber_Hooks(t *testing.T) {
	var visits, exits []string
	res, err := dfs.Number(buildChain(3),
		dfs.WithOnVisit(func(id string, n int) error {
			visits = append(visits, id+":"+strconv.Itoa(n))
			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			exits = append(exits, id)
			return nil
		}),
	)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{"N0:0", "N1:1", "N2:2"}, visits)
	assert.Equal(t, []string{"N2", "N1", "N0"}, exits)

	boom := errors.New("boom")
	_, err = dfs.Number(buildChain(3), dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestNumber_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Number(buildChain(10), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNumber_DeepChainIsIterative(t *testing.T) {
	res, err := dfs.Number(buildChain(200000))
	require.NoError(t, err)
	assert.Equal(t, 199999, res.Number["N199999"])
}
