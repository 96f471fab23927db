package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-planar/core"
	"github.com/katalvlaran/lvlath-planar/embedding"
	"github.com/katalvlaran/lvlath-planar/planarity"
	"github.com/katalvlaran/lvlath-planar/traverse"
)

// reportFlags selects what is printed after the planarity answer.
type reportFlags struct {
	embedding   bool
	faces       bool
	canonical   bool
	kuratowski  bool
	listStorage bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.embedding, "embedding", false, "print the rotation system of a planar graph")
	cmd.Flags().BoolVar(&f.faces, "faces", false, "print the faces of a planar graph")
	cmd.Flags().BoolVar(&f.canonical, "canonical", false, "print a canonical vertex order of a triangulated planar graph")
	cmd.Flags().BoolVar(&f.kuratowski, "kuratowski", false, "print a Kuratowski subgraph of a non-planar graph")
	cmd.Flags().BoolVar(&f.listStorage, "list-storage", false, "use list-backed face storage")
}

func (f *reportFlags) options(logger *log.Logger) []planarity.Option {
	opts := []planarity.Option{planarity.WithLogger(logger)}
	if f.kuratowski {
		opts = append(opts, planarity.WithKuratowski())
	}
	if f.listStorage {
		opts = append(opts, planarity.WithListStorage())
	}

	return opts
}

// report tests g and writes the answer plus the requested details to w.
func report(w io.Writer, logger *log.Logger, g *core.Graph, flags reportFlags) error {
	prog := newProgress(logger)
	t, err := planarity.New(g, flags.options(logger)...)
	if err != nil {
		return err
	}
	planar, err := t.IsPlanar()
	if err != nil {
		return err
	}
	prog.done("planarity decided", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	fmt.Fprintf(w, "planar: %v\n", planar)
	if !planar {
		if !flags.kuratowski {
			return nil
		}
		ids, err := t.KuratowskiSubgraph()
		if err != nil {
			return err
		}
		kind, err := planarity.Classify(g, ids)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "kuratowski: %s\n", kind)
		fmt.Fprintf(w, "witness: %s\n", strings.Join(ids, " "))

		return nil
	}

	if !flags.embedding && !flags.faces && !flags.canonical {
		return nil
	}
	m, err := t.Embedding()
	if err != nil {
		return err
	}
	if flags.embedding {
		if err = writeRotation(w, g, m); err != nil {
			return err
		}
	}
	if flags.faces {
		if err = writeFaces(w, m); err != nil {
			return err
		}
	}
	if flags.canonical {
		order, err := traverse.CanonicalOrder(m)
		switch {
		case errors.Is(err, traverse.ErrNotTriangulated):
			logger.Warn("no canonical order", "err", err)
			fmt.Fprintln(w, "canonical: not internally triangulated")
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "canonical: %s\n", strings.Join(order, " "))
		}
	}

	return nil
}

// writeRotation prints "v: n1 n2 …" for every vertex in graph order.
func writeRotation(w io.Writer, g *core.Graph, m *embedding.Embedding) error {
	for _, v := range g.Vertices() {
		rot, err := m.Rotation(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", v, strings.Join(rot, " "))
	}

	return nil
}

// writeFaces prints the face count and every face's vertex cycle, breadth
// first from the boundary face.
func writeFaces(w io.Writer, m *embedding.Embedding) error {
	fmt.Fprintf(w, "faces: %d\n", m.FaceCount())
	var cycle []string

	return traverse.BreadthFirst(m, traverse.Visitor{
		BeginFace:  func(embedding.DirectedEdge) { cycle = cycle[:0] },
		NextVertex: func(v string) { cycle = append(cycle, v) },
		EndFace:    func(embedding.DirectedEdge) { fmt.Fprintf(w, "face: %s\n", strings.Join(cycle, " ")) },
	})
}
