// Package planarity defines errors, options and result kinds of the
// Boyer-Myrvold planarity engine.
package planarity

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/dfs"
)

// none marks an absent vertex or edge index.
const none = -1

// Sentinel errors for planarity operations.
var (
	// ErrNilGraph is returned when a nil source is passed to New.
	ErrNilGraph = errors.New("planarity: graph is nil")

	// ErrUnknownVertex indicates an edge endpoint missing from Vertices().
	ErrUnknownVertex = errors.New("planarity: edge endpoint is not a vertex")

	// ErrDuplicateVertex indicates a vertex listed twice by Vertices().
	ErrDuplicateVertex = errors.New("planarity: duplicate vertex")

	// ErrDuplicateEdge indicates an edge ID listed twice by Edges().
	ErrDuplicateEdge = errors.New("planarity: duplicate edge ID")

	// ErrEdgeNotFound indicates an edge ID unknown to the graph.
	ErrEdgeNotFound = errors.New("planarity: edge not found")

	// ErrNotRun indicates a query made before IsPlanar.
	ErrNotRun = errors.New("planarity: IsPlanar has not been called")

	// ErrNotPlanar indicates an embedding query on a non-planar graph.
	ErrNotPlanar = errors.New("planarity: graph is not planar")

	// ErrPlanar indicates a Kuratowski query on a planar graph.
	ErrPlanar = errors.New("planarity: graph is planar")

	// ErrIsolationDisabled indicates a Kuratowski query on an engine built
	// without WithKuratowski.
	ErrIsolationDisabled = errors.New("planarity: kuratowski isolation disabled")

	// ErrBadPreprocessing indicates a DFS numbering inconsistent with the graph.
	ErrBadPreprocessing = errors.New("planarity: inconsistent DFS numbering")

	// ErrCorrupt indicates an internal walk exceeded its bound.
	ErrCorrupt = errors.New("planarity: structural corruption")
)

// Kind classifies a Kuratowski subgraph.
type Kind int

const (
	// KindUnknown is reported for edge sets that are neither shape.
	KindUnknown Kind = iota
	// KindK5 is a subdivision of the complete graph on five vertices.
	KindK5
	// KindK33 is a subdivision of the complete bipartite graph K3,3.
	KindK33
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindK5:
		return "K5"
	case KindK33:
		return "K3,3"
	default:
		return "unknown"
	}
}

// Option configures a Tester.
type Option func(*Options)

// Options holds the per-run configuration flags.
type Options struct {
	// Kuratowski records old face handles and embedded edges so that a
	// witness can be isolated after a negative answer.
	Kuratowski bool

	// ListStorage backs face handles with plain linked lists instead of lazy
	// reversal trees. Results are identical; the worst case becomes O(n²).
	ListStorage bool

	// Preprocessor computes the DFS numbering; defaults to dfs.Number.
	Preprocessor dfs.Preprocessor

	// Logger receives debug events; defaults to a discarding logger.
	Logger *log.Logger
}

// DefaultOptions returns tree storage, no isolation, dfs.Number and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Kuratowski:   false,
		ListStorage:  false,
		Preprocessor: func(g core.Source) (*dfs.Result, error) { return dfs.Number(g) },
		Logger:       log.New(io.Discard),
	}
}

// WithKuratowski enables Kuratowski subgraph isolation.
func WithKuratowski() Option {
	return func(o *Options) { o.Kuratowski = true }
}

// WithListStorage selects linked-list edge storage for face handles.
func WithListStorage() Option {
	return func(o *Options) { o.ListStorage = true }
}

// WithPreprocessor installs a custom DFS numbering. Nil is ignored.
func WithPreprocessor(p dfs.Preprocessor) Option {
	return func(o *Options) {
		if p != nil {
			o.Preprocessor = p
		}
	}
}

// WithLogger installs a logger for debug events. Nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
