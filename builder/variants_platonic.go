// SPDX-License-Identifier: MIT
// Package: lvlath-planar/builder
//
// variants_platonic.go - canonical edge tables for the Platonic solids and
// the Petersen graph. Pairs are stored with u < v in emission order.

package builder

// PlatonicName selects one of the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String implements fmt.Stringer.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// pair is one undirected edge between vertex indices.
type pair struct{ u, v int }

// platonicByName maps the lower-case names accepted by Fixture.
var platonicByName = map[string]PlatonicName{
	"tetrahedron":  Tetrahedron,
	"cube":         Cube,
	"octahedron":   Octahedron,
	"dodecahedron": Dodecahedron,
	"icosahedron":  Icosahedron,
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]pair{
	// K4.
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i-(i+4).
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {0, 3},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},

	// Poles 0 and 1; equator 2-4-3-5.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	// Pentagons 0..4 and 5..9, middle 10-cycle 10..19, alternating spokes.
	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},

	// Poles 0 and 11; rings 1..5 and 6..10; Ti joins Bi and B(i+1).
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// petersenVertices is the vertex count of the Petersen graph.
const petersenVertices = 10

// petersenEdges: outer pentagon 0..4, spokes i-(i+5), inner pentagram.
var petersenEdges = []pair{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4},
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	{5, 7}, {7, 9}, {6, 9}, {6, 8}, {5, 8},
}
