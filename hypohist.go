// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

// IsHypohistPartials reports whether every single-vertex deletion of graph
// has a HIST ("partially hypohisterian", spec.md §4.6). It runs a fresh
// FindHists with find_one=true per vertex, using a fresh per-run counter
// so each deletion's result does not leak into the next.
func IsHypohistPartials(graph *Graph, reporter Reporter, counters *Counters) bool {
	if counters == nil {
		panic("histg: IsHypohistPartials called with nil Counters")
	}
	for v := 0; v < graph.Vertices; v++ {
		run := &Counters{}
		found := FindHists(graph, Bit(NI(v)), reporter, true, run)
		counters.HistsTotal += run.HistsThisRun
		counters.TreesTotal += run.TreesThisRun
		if !found {
			return false
		}
	}
	return true
}

// IsHypohist decides whether graph is hypohisterian: it has no HIST
// itself, yet every single-vertex-deletion subgraph has one (spec.md
// §4.6). When onlyPartials is true, only the weaker
// "every deletion has a HIST" condition is checked.
func IsHypohist(graph *Graph, reporter Reporter, onlyPartials bool, counters *Counters) bool {
	if counters == nil {
		panic("histg: IsHypohist called with nil Counters")
	}
	if onlyPartials {
		return IsHypohistPartials(graph, reporter, counters)
	}
	whole := &Counters{}
	if FindHists(graph, 0, nil, true, whole) {
		counters.HistsTotal += whole.HistsThisRun
		counters.TreesTotal += whole.TreesThisRun
		return false
	}
	counters.HistsTotal += whole.HistsThisRun
	counters.TreesTotal += whole.TreesThisRun
	return IsHypohistPartials(graph, reporter, counters)
}
