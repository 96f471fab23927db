// File: tester.go
// Role: Public entry points: Tester (one engine run with cached result) and
// the package-level helpers IsPlanar, Embed, Kuratowski and Classify.

package planarity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/embedding"
)

// Tester runs the Boyer-Myrvold test on one graph source.
//
// A Tester is single-use: IsPlanar runs the engine once and every later call
// returns the cached answer. It is not safe for concurrent use.
type Tester struct {
	src  core.Source
	opts Options
	eng  *engine

	ran    bool
	planar bool
	err    error

	witness []string // cached Kuratowski edge IDs
}

// New validates g, runs the DFS preprocessor and seeds the face handles.
// The source must not change until the Tester is discarded.
//
// Errors: ErrNilGraph, ErrDuplicateVertex, ErrDuplicateEdge, ErrUnknownVertex,
// ErrBadPreprocessing, or any preprocessor error.
// Complexity: O(V + E).
func New(g core.Source, opts ...Option) (*Tester, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	eng, err := newEngine(g, o)
	if err != nil {
		return nil, err
	}

	return &Tester{src: g, opts: o, eng: eng}, nil
}

// IsPlanar reports whether the graph admits a planar embedding.
// Non-planarity is a result, not an error: the error is non-nil only when an
// internal walk exceeded its bound (ErrCorrupt).
// Complexity: O(V + E) with tree storage.
func (t *Tester) IsPlanar() (bool, error) {
	if !t.ran {
		t.planar, t.err = t.eng.run()
		t.ran = true
	}

	return t.planar, t.err
}

// Witness returns the vertex v whose back edges could not all be embedded and
// the two externally active vertices x, y that block it.
func (t *Tester) Witness() (v, x, y string, ok bool) {
	if !t.ran || t.planar || t.eng.kv == none {
		return "", "", "", false
	}
	e := t.eng

	return e.ids[e.kv], e.ids[e.kx], e.ids[e.ky], true
}

// ready checks that a planar result is available.
func (t *Tester) ready(method string) error {
	switch {
	case !t.ran:
		return fmt.Errorf("%s: %w", method, ErrNotRun)
	case t.err != nil:
		return fmt.Errorf("%s: %w", method, t.err)
	case !t.planar:
		return fmt.Errorf("%s: %w", method, ErrNotPlanar)
	}

	return nil
}

// EdgesOf returns the IDs of the edges around v in rotation order.
// A self-loop appears twice, once per end.
func (t *Tester) EdgesOf(v string) ([]string, error) {
	const method = "EdgesOf"
	if err := t.ready(method); err != nil {
		return nil, err
	}
	i, ok := t.eng.index[v]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", method, v, ErrUnknownVertex)
	}

	return t.edgeIDs(t.eng.rotation(i)), nil
}

// Rotation returns the rotation system: EdgesOf for every vertex.
func (t *Tester) Rotation() (map[string][]string, error) {
	if err := t.ready("Rotation"); err != nil {
		return nil, err
	}
	rot := make(map[string][]string, len(t.eng.ids))
	for i, id := range t.eng.ids {
		rot[id] = t.edgeIDs(t.eng.rotation(i))
	}

	return rot, nil
}

// Embedding builds an Embedding Store from the rotation system.
func (t *Tester) Embedding(opts ...embedding.Option) (*embedding.Embedding, error) {
	const method = "Embedding"
	rot, err := t.Rotation()
	if err != nil {
		return nil, err
	}
	edges := make([]embedding.Edge, len(t.eng.edges))
	for i, ed := range t.eng.edges {
		edges[i] = embedding.Edge{ID: ed.ID, Source: ed.From, Target: ed.To}
	}
	m, err := embedding.FromRotation(t.eng.ids, edges, rot, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}

func (t *Tester) edgeIDs(idx []int) []string {
	out := make([]string, len(idx))
	for i, ei := range idx {
		out[i] = t.eng.edges[ei].ID
	}

	return out
}

// KuratowskiSubgraph returns the IDs, in Edges() order, of a minimal
// non-planar subgraph: a subdivision of K5 or K3,3.
//
// Valid only after IsPlanar returned false on a Tester built with
// WithKuratowski. The candidate found by the case analysis is re-tested; if
// it is planar the untrimmed candidate and then the whole graph are tried
// instead. The survivor is minimized, so the result is always exact.
//
// Errors: ErrNotRun, ErrPlanar, ErrIsolationDisabled, ErrCorrupt.
func (t *Tester) KuratowskiSubgraph() ([]string, error) {
	const method = "KuratowskiSubgraph"
	switch {
	case !t.opts.Kuratowski:
		return nil, fmt.Errorf("%s: %w", method, ErrIsolationDisabled)
	case !t.ran:
		return nil, fmt.Errorf("%s: %w", method, ErrNotRun)
	case t.err != nil:
		return nil, fmt.Errorf("%s: %w", method, t.err)
	case t.planar:
		return nil, fmt.Errorf("%s: %w", method, ErrPlanar)
	}
	if t.witness != nil {
		return append([]string(nil), t.witness...), nil
	}

	e := t.eng
	var candidates [][]int
	found, err := e.isolate()
	switch {
	case err == nil:
		candidates = append(candidates, found.trimmed, found.raw)
	case errors.Is(err, errWalk) || errors.Is(err, ErrCorrupt):
		e.log.Debug("isolation fell back to the full edge set", "err", err)
	default:
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	all := make([]int, len(e.edges))
	for i := range all {
		all[i] = i
	}
	candidates = append(candidates, all)

	planar := func(edges []*core.Edge) (bool, error) { return planarEdges(edges, t.opts.ListStorage) }
	for _, cand := range candidates {
		edges := make([]*core.Edge, len(cand))
		for i, ei := range cand {
			edges[i] = e.edges[ei]
		}
		ok, err := planar(edges)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if ok {
			e.log.Debug("candidate is planar", "edges", len(cand))
			continue
		}
		kept, err := minimize(edges, planar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		t.witness = t.inputOrder(kept)

		return append([]string(nil), t.witness...), nil
	}

	return nil, fmt.Errorf("%s: no non-planar edge set: %w", method, ErrCorrupt)
}

// inputOrder sorts edges by their position in Edges().
func (t *Tester) inputOrder(edges []*core.Edge) []string {
	keep := make([]bool, len(t.eng.edges))
	for _, ed := range edges {
		keep[t.eng.edgeIndex[ed.ID]] = true
	}
	out := make([]string, 0, len(edges))
	for i, ok := range keep {
		if ok {
			out = append(out, t.eng.edges[i].ID)
		}
	}

	return out
}

// IsPlanar reports whether g is planar with default options.
func IsPlanar(g core.Source) (bool, error) {
	t, err := New(g)
	if err != nil {
		return false, err
	}

	return t.IsPlanar()
}

// Embed returns a planar embedding of g, or ErrNotPlanar.
func Embed(g core.Source, opts ...embedding.Option) (*embedding.Embedding, error) {
	t, err := New(g)
	if err != nil {
		return nil, err
	}
	if _, err = t.IsPlanar(); err != nil {
		return nil, err
	}

	return t.Embedding(opts...)
}

// Kuratowski returns a Kuratowski subgraph of g, or ErrPlanar.
func Kuratowski(g core.Source) ([]string, error) {
	t, err := New(g, WithKuratowski())
	if err != nil {
		return nil, err
	}
	if _, err = t.IsPlanar(); err != nil {
		return nil, err
	}

	return t.KuratowskiSubgraph()
}

// Classify names the shape of the subgraph of g formed by edgeIDs: KindK5
// when exactly five vertices have degree 4 and the rest degree 2, KindK33
// when exactly six have degree 3, KindUnknown otherwise.
//
// Errors: ErrNilGraph, ErrEdgeNotFound.
func Classify(g core.Source, edgeIDs []string) (Kind, error) {
	if g == nil {
		return KindUnknown, ErrNilGraph
	}
	byID := make(map[string]*core.Edge)
	for _, ed := range g.Edges() {
		byID[ed.ID] = ed
	}
	degree := make(map[string]int)
	for _, id := range edgeIDs {
		ed, ok := byID[id]
		if !ok {
			return KindUnknown, fmt.Errorf("Classify: %q: %w", id, ErrEdgeNotFound)
		}
		degree[ed.From]++
		degree[ed.To]++
	}

	branch := map[int]int{}
	for _, d := range degree {
		switch d {
		case 2:
		case 3, 4:
			branch[d]++
		default:
			return KindUnknown, nil
		}
	}
	switch {
	case branch[4] == 5 && branch[3] == 0:
		return KindK5, nil
	case branch[3] == 6 && branch[4] == 0:
		return KindK33, nil
	}

	return KindUnknown, nil
}
