package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvlath-planar/core"
)

// ErrBadGraphFile indicates a graph file that decodes but cannot be used.
var ErrBadGraphFile = errors.New("cli: bad graph file")

// graphFile is the TOML layout of a graph:
//
//	loops = false
//	multi = true
//	vertices = ["a", "b"]
//	[[edges]]
//	from = "a"
//	to = "b"
type graphFile struct {
	Loops    bool        `toml:"loops"`
	Multi    bool        `toml:"multi"`
	Vertices []string    `toml:"vertices"`
	Edges    []graphEdge `toml:"edges"`
}

type graphEdge struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// loadGraph reads a TOML graph file from path.
func loadGraph(path string) (*core.Graph, error) {
	var gf graphFile
	md, err := toml.DecodeFile(path, &gf)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return gf.build(md)
}

// decodeGraph parses a TOML graph from data.
func decodeGraph(data string) (*core.Graph, error) {
	var gf graphFile
	md, err := toml.Decode(data, &gf)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return gf.build(md)
}

// build rejects unknown keys and materializes the graph. Listed vertices come
// first, in file order; edge endpoints not listed are added as met.
func (gf *graphFile) build(md toml.MetaData) (*core.Graph, error) {
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrBadGraphFile)
	}

	var opts []core.GraphOption
	if gf.Loops {
		opts = append(opts, core.WithLoops())
	}
	if gf.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)
	for _, v := range gf.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v, err)
		}
	}
	for i, e := range gf.Edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %d (%s-%s): %w", i+1, e.From, e.To, err)
		}
	}

	return g, nil
}
