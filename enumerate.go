// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

// FindHists enumerates the HISTs of graph, optionally hiding the vertices
// in hidden from consideration. It reports at most the first HIST found
// when findOne is true, otherwise it enumerates exhaustively. Every HIST
// found is reported to reporter (if non-nil) and counted in counters.
// FindHists returns true iff at least one HIST was found.
//
// FindHists panics if counters is nil (a missing RunData record is a
// programmer contract violation per spec.md §7) or if graph.Vertices
// exceeds MaxVertices.
func FindHists(graph *Graph, hidden VertexSet, reporter Reporter, findOne bool, counters *Counters) bool {
	if counters == nil {
		panic("histg: FindHists called with nil Counters")
	}
	if graph.Vertices > MaxVertices {
		panic("histg: graph exceeds the 64-vertex ceiling")
	}

	o := NewOverlayGraph(graph, hidden)
	counters.startRun()
	histsAlg(o, reporter, findOne, counters)
	counters.finishRun()
	return counters.HistsThisRun != 0
}

// FindSpanningTrees enumerates every spanning tree of graph (no
// restriction on vertex degree), sharing the overlay and candidate-edge
// machinery with FindHists but applying neither the HIST predicate nor
// its degree-2 pruning rule. It reports at most the first spanning tree
// found when findOne is true. FindSpanningTrees returns true iff at least
// one spanning tree was found.
func FindSpanningTrees(graph *Graph, reporter Reporter, findOne bool, counters *Counters) bool {
	if counters == nil {
		panic("histg: FindSpanningTrees called with nil Counters")
	}
	if graph.Vertices > MaxVertices {
		panic("histg: graph exceeds the 64-vertex ceiling")
	}

	o := NewOverlayGraph(graph, 0)
	counters.startRun()
	spanningAlg(o, reporter, findOne, counters)
	counters.finishRun()
	return counters.TreesThisRun != 0
}

// histsAlg is the enumeration driver of spec.md §4.5.
func histsAlg(o *OverlayGraph, reporter Reporter, findOne bool, counters *Counters) {
	if findOne && counters.HistsThisRun >= 1 {
		return
	}

	if o.treeComplete() {
		counters.TreesThisRun++
		if o.isHIST() {
			if reporter != nil {
				reporter.Report(o.Tree())
			}
			counters.HistsThisRun++
		}
		return
	}

	r, bothInTree, ok := o.nextEdge()
	if !ok {
		return
	}
	e := o.edges[r]
	u, v := e.origin, e.destination

	if !bothInTree {
		o.AddEdgeToTree(r)
		if !o.histImpossible(u, v) {
			histsAlg(o, reporter, findOne, counters)
		}
		o.RemoveEdgeFromTree(r)
	}

	o.RemoveEdgeFromGraph(r)
	if !o.histImpossible(u, v) {
		histsAlg(o, reporter, findOne, counters)
	}
	o.AddEdgeToGraph(r)
}

// spanningAlg is histsAlg without the HIST predicate or its pruning: the
// only impossibility check left is reachability (a vertex with
// graph-degree 0 cannot be spanned), and every completed tree is reported.
func spanningAlg(o *OverlayGraph, reporter Reporter, findOne bool, counters *Counters) {
	if findOne && counters.TreesThisRun >= 1 {
		return
	}

	if o.treeComplete() {
		counters.TreesThisRun++
		if reporter != nil {
			reporter.Report(o.Tree())
		}
		return
	}

	r, bothInTree, ok := o.nextEdge()
	if !ok {
		return
	}
	e := o.edges[r]
	u, v := e.origin, e.destination

	if !bothInTree {
		o.AddEdgeToTree(r)
		spanningAlg(o, reporter, findOne, counters)
		o.RemoveEdgeFromTree(r)
	}

	o.RemoveEdgeFromGraph(r)
	if o.dGraphDegree[u] != 0 && o.dGraphDegree[v] != 0 {
		spanningAlg(o, reporter, findOne, counters)
	}
	o.AddEdgeToGraph(r)
}
