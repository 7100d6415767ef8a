// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

import "testing"

// star builds K1,n: vertex 0 joined to every other vertex, no other edges.
func star(n int) *Graph {
	g := NewGraph(n)
	for v := 1; v < n; v++ {
		g.AddEdge(0, NI(v))
	}
	return g
}

func TestOverlayGraphDegreesAndExtendable(t *testing.T) {
	g := star(4)
	o := NewOverlayGraph(g, 0)
	for v := 0; v < 4; v++ {
		want := 1
		if v == 0 {
			want = 3
		}
		if o.dGraphDegree[v] != want {
			t.Errorf("dGraphDegree[%d] = %d, want %d", v, o.dGraphDegree[v], want)
		}
	}
	if o.extendable != 0 {
		t.Error("extendable should be empty before any edge is selected")
	}
}

func TestOverlayGraphHiddenVertex(t *testing.T) {
	g := star(4)
	o := NewOverlayGraph(g, Bit(3))
	if o.nbAvailableVertices != 3 {
		t.Errorf("nbAvailableVertices = %d, want 3", o.nbAvailableVertices)
	}
	if o.dGraphDegree[0] != 2 {
		t.Errorf("dGraphDegree[0] with vertex 3 hidden = %d, want 2", o.dGraphDegree[0])
	}
}

// findRefBetween scans u's neighbour list for the edge between u and v.
func findRefBetween(o *OverlayGraph, u, v NI) (edgeRef, bool) {
	for _, nb := range o.neighbours[u] {
		if nb.other == v {
			return nb.ref, true
		}
	}
	return 0, false
}

func TestAddRemoveEdgeToTreeReversible(t *testing.T) {
	g := star(4)
	o := NewOverlayGraph(g, 0)
	r, ok := findRefBetween(o, 0, 1)
	if !ok {
		t.Fatal("expected an edge between 0 and 1")
	}

	before := *o
	beforeDegree0 := o.dGraphDegree[0]

	o.AddEdgeToTree(r)
	if o.dTreeDegree[0] != 1 || o.dTreeDegree[1] != 1 {
		t.Fatalf("after AddEdgeToTree, tree degrees = %d,%d want 1,1", o.dTreeDegree[0], o.dTreeDegree[1])
	}
	if o.dNbTreeEdges != 1 {
		t.Fatalf("dNbTreeEdges = %d, want 1", o.dNbTreeEdges)
	}

	o.RemoveEdgeFromTree(r)
	if o.dGraphDegree[0] != beforeDegree0 {
		t.Error("RemoveEdgeFromTree should not change graph-degree")
	}
	if o.dNbTreeEdges != before.dNbTreeEdges {
		t.Errorf("dNbTreeEdges after add+remove = %d, want %d", o.dNbTreeEdges, before.dNbTreeEdges)
	}
	if o.extendable != before.extendable {
		t.Error("extendable should be restored after AddEdgeToTree+RemoveEdgeFromTree")
	}
}

func TestAddRemoveEdgeToGraphReversible(t *testing.T) {
	g := star(4)
	o := NewOverlayGraph(g, 0)
	r, ok := findRefBetween(o, 0, 2)
	if !ok {
		t.Fatal("expected an edge between 0 and 2")
	}

	beforeDegree0 := o.dGraphDegree[0]
	beforeDegree2 := o.dGraphDegree[2]

	o.RemoveEdgeFromGraph(r)
	if o.dGraphDegree[0] != beforeDegree0-1 || o.dGraphDegree[2] != beforeDegree2-1 {
		t.Fatal("RemoveEdgeFromGraph should decrement both endpoints' graph-degree")
	}
	o.AddEdgeToGraph(r)
	if o.dGraphDegree[0] != beforeDegree0 || o.dGraphDegree[2] != beforeDegree2 {
		t.Error("AddEdgeToGraph should restore graph-degree after RemoveEdgeFromGraph")
	}
}

func TestTreeCompleteAndIsHIST(t *testing.T) {
	g := star(5)
	o := NewOverlayGraph(g, 0)
	for v := 1; v < 5; v++ {
		r, ok := findRefBetween(o, 0, NI(v))
		if !ok {
			t.Fatalf("expected an edge between 0 and %d", v)
		}
		o.AddEdgeToTree(r)
	}
	if !o.treeComplete() {
		t.Fatal("selecting every star edge should complete the tree")
	}
	if !o.isHIST() {
		t.Error("K1,4's unique spanning tree has no degree-2 vertex, should be a HIST")
	}
	tree := o.Tree()
	if tree.Edges != 4 {
		t.Errorf("Tree().Edges = %d, want 4", tree.Edges)
	}
}

func TestHistImpossibleForcedDegreeTwo(t *testing.T) {
	// Path 0-1-2: vertex 1 has graph-degree 2; once both its edges are
	// selected its tree-degree is 2 too, so a HIST is impossible.
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	o := NewOverlayGraph(g, 0)

	r01, _ := findRefBetween(o, 0, 1)
	r12, _ := findRefBetween(o, 1, 2)
	o.AddEdgeToTree(r01)
	o.AddEdgeToTree(r12)

	if !o.histImpossible(1, 1) {
		t.Error("vertex 1 with graph-degree 2 and tree-degree 2 should be histImpossible")
	}
}
