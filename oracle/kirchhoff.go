// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package oracle

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/histg/histg"
)

// Laplacian returns the Laplacian matrix D - A of graph: the degree matrix
// minus the adjacency matrix, in the layout of
// original_source/src/kirchhoff.c's igraph_laplacian.
func Laplacian(graph *histg.Graph) *mat.Dense {
	n := graph.Vertices
	l := mat.NewDense(n, n, nil)
	for row := 0; row < n; row++ {
		l.Set(row, row, float64(graph.Degree(histg.NI(row))))
		for col := 0; col < n; col++ {
			if col != row && graph.HasEdge(histg.NI(row), histg.NI(col)) {
				l.Set(row, col, -1)
			}
		}
	}
	return l
}

// SpanningTreeCountKirchhoff counts graph's spanning trees via the
// matrix-tree theorem: any cofactor of the Laplacian (here, the one
// obtained by deleting the last row and column) equals the number of
// spanning trees. A graph with fewer than 2 vertices has exactly one
// (trivial) spanning tree by convention.
func SpanningTreeCountKirchhoff(graph *histg.Graph) int64 {
	n := graph.Vertices
	if n < 2 {
		return 1
	}
	l := Laplacian(graph)
	minor := l.Slice(0, n-1, 0, n-1)
	det := mat.Det(minor)
	return int64(math.Round(det))
}
