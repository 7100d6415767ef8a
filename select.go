// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

// nextEdge implements the candidate-edge heuristic of spec.md §4.4: pick
// the origin with minimum graph-degree among the vertices eligible to
// extend the partial tree, then pick the neighbour of minimum graph-degree
// among its still-live, unselected edges. ok is false if no candidate
// exists.
//
// bothInTree reports whether the chosen edge's other endpoint is already
// in the partial tree; when it is, including the edge would close a
// cycle, and the caller must skip the include branch (the sole
// enforcement of acyclicity, I7).
func (o *OverlayGraph) nextEdge() (r edgeRef, bothInTree bool, ok bool) {
	origins := o.availableVertices
	if o.dNbTreeEdges != 0 {
		origins = o.extendable
	}
	if origins.Empty() {
		return 0, false, false
	}

	origin, found := o.minDegreeVertex(origins)
	if !found {
		return 0, false, false
	}

	bestRef := edgeRef(-1)
	bestDegree := -1
	for _, nb := range o.neighbours[origin] {
		e := &o.edges[nb.ref]
		if e.removed || e.selected {
			continue
		}
		d := o.dGraphDegree[nb.other]
		if bestRef == -1 || d < bestDegree {
			bestRef = nb.ref
			bestDegree = d
		}
	}
	if bestRef == -1 {
		return 0, false, false
	}

	e := &o.edges[bestRef]
	other := e.origin
	if other == origin {
		other = e.destination
	}
	return bestRef, o.dTreeDegree[other] > 0, true
}

// minDegreeVertex returns the vertex of s with minimum dGraphDegree,
// breaking ties toward the smallest vertex number (spec.md §4.4 step 2).
func (o *OverlayGraph) minDegreeVertex(s VertexSet) (NI, bool) {
	best := NI(-1)
	bestDegree := 0
	for rest := s; !rest.Empty(); {
		v := firstVertex(rest)
		rest = rest.without(v)
		d := o.dGraphDegree[v]
		if best == -1 || d < bestDegree {
			best, bestDegree = v, d
		}
	}
	return best, best != -1
}

// histImpossible implements the local pruning of spec.md §4.4: a HIST is
// no longer reachable from the current state if either endpoint of the
// most recently touched edge has become unreachable (graph-degree 0), or
// is forced to tree-degree 2 (graph-degree and tree-degree both 2).
func (o *OverlayGraph) histImpossible(u, v NI) bool {
	return endpointImpossible(o, u) || endpointImpossible(o, v)
}

func endpointImpossible(o *OverlayGraph, v NI) bool {
	g, t := o.dGraphDegree[v], o.dTreeDegree[v]
	return g == 0 || (g == 2 && t == 2)
}
