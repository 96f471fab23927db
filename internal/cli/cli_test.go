package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-planar/builder"
	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/embedding"
	"github.com/katalvlaran/lvlath-planar/planarity"
)

// run executes the CLI and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

// writeFile stores content in a temporary TOML file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const square = `
vertices = ["a", "b", "c", "d"]

[[edges]]
from = "a"
to = "b"

[[edges]]
from = "b"
to = "c"

[[edges]]
from = "c"
to = "d"

[[edges]]
from = "d"
to = "a"
`

func TestFixture_Kuratowski(t *testing.T) {
	out, _, err := run(t, "fixture", "complete", "--n", "5", "--kuratowski")
	require.NoError(t, err)
	assert.Equal(t, "planar: false\nkuratowski: K5\nwitness: e1 e2 e3 e4 e5 e6 e7 e8 e9 e10\n", out)

	out, _, err = run(t, "fixture", "bipartite", "--n", "3", "--m", "3", "--kuratowski", "--list-storage")
	require.NoError(t, err)
	assert.Equal(t, "planar: false\nkuratowski: K3,3\nwitness: e1 e2 e3 e4 e5 e6 e7 e8 e9\n", out)

	out, _, err = run(t, "fixture", "petersen")
	require.NoError(t, err)
	assert.Equal(t, "planar: false\n", out)
}

func TestFixture_Canonical(t *testing.T) {
	out, _, err := run(t, "fixture", "octahedron", "--canonical")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "planar: true", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "canonical: "))
	assert.Len(t, strings.Fields(strings.TrimPrefix(lines[1], "canonical: ")), 6)

	out, _, err = run(t, "fixture", "cube", "--canonical")
	require.NoError(t, err)
	assert.Equal(t, "planar: true\ncanonical: not internally triangulated\n", out)
}

func TestFixture_Errors(t *testing.T) {
	_, _, err := run(t, "fixture", "moebius")
	assert.ErrorIs(t, err, builder.ErrUnknownFixture)

	_, _, err = run(t, "fixture", "cycle", "--n", "2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = run(t, "fixture")
	assert.Error(t, err)
}

func TestTest_EmbeddingAndFaces(t *testing.T) {
	path := writeFile(t, square)

	out, _, err := run(t, "test", path, "--embedding", "--faces")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "planar: true", lines[0])
	for i, v := range []string{"a", "b", "c", "d"} {
		require.True(t, strings.HasPrefix(lines[1+i], v+": "), lines[1+i])
		assert.Len(t, strings.Fields(lines[1+i]), 3)
	}
	assert.Equal(t, "faces: 2", lines[5])
	for _, l := range lines[6:] {
		require.True(t, strings.HasPrefix(l, "face: "), l)
		assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, strings.Fields(strings.TrimPrefix(l, "face: ")))
	}
}

func TestWriteRotation_VertexMissingFromEmbedding(t *testing.T) {
	triangle, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	m, err := planarity.Embed(triangle)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeRotation(&buf, triangle, m))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 3)

	four, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	buf.Reset()
	err = writeRotation(&buf, four, m)
	assert.ErrorIs(t, err, embedding.ErrVertexNotFound)
}

func TestTest_VerboseLogsToStderr(t *testing.T) {
	path := writeFile(t, square)

	out, stderr, err := run(t, "--verbose", "test", path)
	require.NoError(t, err)
	assert.Equal(t, "planar: true\n", out)
	assert.Contains(t, stderr, "graph loaded")
	assert.Contains(t, stderr, "planarity decided")

	_, stderr, err = run(t, "test", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestTest_MissingFile(t *testing.T) {
	_, _, err := run(t, "test", filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeGraph(t *testing.T) {
	g, err := decodeGraph(square)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())

	g, err = decodeGraph(`
loops = true
multi = true
vertices = ["lonely"]

[[edges]]
from = "a"
to = "a"

[[edges]]
from = "a"
to = "b"

[[edges]]
from = "a"
to = "b"
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"lonely", "a", "b"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	_, err = decodeGraph(`
[[edges]]
from = "a"
to = "b"

[[edges]]
from = "b"
to = "a"
`)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = decodeGraph(`
[[edges]]
from = "a"
to = "a"
`)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = decodeGraph(`directed = true`)
	assert.ErrorIs(t, err, ErrBadGraphFile)

	_, err = decodeGraph(`vertices = "a"`)
	assert.Error(t, err)
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	ctx := withLogger(context.Background(), logger)
	assert.Same(t, logger, loggerFromContext(ctx))
	assert.NotNil(t, loggerFromContext(context.Background()))

	debug := newLogger(&buf, log.DebugLevel)
	newProgress(debug).done("step finished", "k", 1)
	assert.Contains(t, buf.String(), "step finished")
	assert.Contains(t, buf.String(), "took")
}
