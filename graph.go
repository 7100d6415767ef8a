// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

import "fmt"

// MaxVertices is the largest vertex count histg can represent: a vertex set
// is a single 64-bit word, so no graph may exceed 64 vertices.
const MaxVertices = 64

// NI is a vertex number. It is used extensively as an array index and as a
// bit position within a VertexSet.
type NI int

// Graph is an immutable simple undirected graph on at most MaxVertices
// vertices. Row v of Adjacency holds the neighbors of v: bit 63-u is set
// iff the edge uv exists. Symmetry (bit 63-u of row v equals bit 63-v of
// row u) is an invariant of every Graph produced by this package.
type Graph struct {
	Vertices  int
	Edges     int
	Adjacency []VertexSet
}

// NewGraph returns an empty graph (no edges) on n vertices.
//
// NewGraph panics if n is negative or exceeds MaxVertices: exceeding the
// 64-vertex ceiling is a programmer contract violation, not a runtime
// condition a caller can recover from once a Graph has been constructed.
func NewGraph(n int) *Graph {
	if n < 0 || n > MaxVertices {
		panic(fmt.Sprintf("histg: vertex count %d out of range [0,%d]", n, MaxVertices))
	}
	return &Graph{Vertices: n, Adjacency: make([]VertexSet, n)}
}

// AddEdge installs the undirected edge uv. It panics if u or v is out of
// range or equal (no loops).
//
// AddEdge does not check whether uv is already present; callers building a
// Graph from a known-simple source (graph6, an adjacency matrix) need not
// pay for that check. Adding an existing edge again leaves Adjacency
// unchanged but still increments Edges, and Simple does not detect this.
func (g *Graph) AddEdge(u, v NI) {
	if int(u) < 0 || int(u) >= g.Vertices || int(v) < 0 || int(v) >= g.Vertices || u == v {
		panic(fmt.Sprintf("histg: invalid edge (%d,%d) for a %d-vertex graph", u, v, g.Vertices))
	}
	g.Adjacency[u] = g.Adjacency[u].with(v)
	g.Adjacency[v] = g.Adjacency[v].with(u)
	g.Edges++
}

// HasEdge reports whether the edge uv is present.
func (g *Graph) HasEdge(u, v NI) bool {
	return g.Adjacency[u].has(v)
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v NI) int {
	return g.Adjacency[v].Len()
}

// Simple reports whether g has no loops and no vertex adjacency row that
// disagrees with its mirror -- i.e. whether the symmetry invariant holds.
// It returns true, -1 for a simple graph; otherwise it returns false and a
// vertex that witnesses the violation.
func (g *Graph) Simple() (ok bool, witness NI) {
	for v := 0; v < g.Vertices; v++ {
		row := g.Adjacency[v]
		if row.has(NI(v)) {
			return false, NI(v)
		}
		for rest := row; rest != 0; {
			w := firstVertex(rest)
			if !g.Adjacency[w].has(NI(v)) {
				return false, NI(v)
			}
			rest = rest.without(w)
		}
	}
	return true, -1
}

// Copy returns a deep copy of g.
func (g *Graph) Copy() *Graph {
	c := &Graph{Vertices: g.Vertices, Edges: g.Edges, Adjacency: make([]VertexSet, g.Vertices)}
	copy(c.Adjacency, g.Adjacency)
	return c
}
