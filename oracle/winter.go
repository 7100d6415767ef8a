// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package oracle

import "github.com/histg/histg"

// multiEdge is an edge of a contracted multigraph: histg.Graph cannot
// represent the parallel edges contraction produces, so the
// deletion-contraction recursion works over this looser representation
// instead (original_source/src/winter.c's EdgeSet, flattened to a slice).
type multiEdge struct {
	u, v int
}

// multiGraph is a vertex count plus an edge multiset, renumbering vertices
// densely in [0,n) as contraction merges them.
type multiGraph struct {
	n     int
	edges []multiEdge
}

func fromHistg(graph *histg.Graph) multiGraph {
	mg := multiGraph{n: graph.Vertices}
	for u := 0; u < graph.Vertices; u++ {
		for v := u + 1; v < graph.Vertices; v++ {
			if graph.HasEdge(histg.NI(u), histg.NI(v)) {
				mg.edges = append(mg.edges, multiEdge{u, v})
			}
		}
	}
	return mg
}

// deleteEdge returns mg with occurrence i of its edge list removed.
func (mg multiGraph) deleteEdge(i int) multiGraph {
	out := multiGraph{n: mg.n, edges: make([]multiEdge, 0, len(mg.edges)-1)}
	for j, e := range mg.edges {
		if j != i {
			out.edges = append(out.edges, e)
		}
	}
	return out
}

// contractEdge returns mg with occurrence i's two endpoints merged into
// one vertex, self-loops dropped, and every remaining vertex renumbered
// densely. Parallel edges created by the merge are kept (deletion-
// contraction requires a multigraph).
func (mg multiGraph) contractEdge(i int) multiGraph {
	e := mg.edges[i]
	keep, drop := e.u, e.v
	if drop < keep {
		keep, drop = drop, keep
	}

	remap := make([]int, mg.n)
	next := 0
	for v := 0; v < mg.n; v++ {
		if v == drop {
			continue
		}
		remap[v] = next
		next++
	}
	remap[drop] = remap[keep]

	out := multiGraph{n: next, edges: make([]multiEdge, 0, len(mg.edges))}
	for j, f := range mg.edges {
		if j == i {
			continue
		}
		a, b := remap[f.u], remap[f.v]
		if a == b {
			continue
		}
		out.edges = append(out.edges, multiEdge{a, b})
	}
	return out
}

// count implements Winter's deletion-contraction recursion: the number of
// spanning trees of mg equals the count with its last edge deleted plus
// the count with that edge contracted, down to the trivial one-vertex
// base case.
func (mg multiGraph) count() int64 {
	if mg.n <= 1 {
		return 1
	}
	if len(mg.edges) == 0 {
		return 0
	}
	last := len(mg.edges) - 1
	return mg.deleteEdge(last).count() + mg.contractEdge(last).count()
}

// SpanningTreeCountWinter counts graph's spanning trees by deletion-
// contraction, independently of both FindSpanningTrees and
// SpanningTreeCountKirchhoff.
func SpanningTreeCountWinter(graph *histg.Graph) int64 {
	return fromHistg(graph).count()
}
