// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

// edge is one element of an OverlayGraph's edge arena: the fixed pair of
// endpoints plus the two mutable flags the enumeration driver flips as it
// explores include/exclude branches.
type edge struct {
	origin, destination NI
	removed, selected   bool
}

// edgeRef is an index into an OverlayGraph's edge arena. Neighbour lists
// hold edgeRefs rather than pointers: the arena is allocated with its
// final capacity up front (see NewOverlayGraph), so it never reallocates
// and every edgeRef stays valid for the overlay's lifetime.
type edgeRef int

// neighbour is one entry of a vertex's adjacency: the other endpoint and a
// reference to the shared edge record. Both of an edge's two neighbour
// entries (one per endpoint) reference the same edgeRef, so flipping the
// edge's flags is visible from either endpoint.
type neighbour struct {
	other NI
	ref   edgeRef
}

// OverlayGraph is the mutable overlay of spec.md §3/§4.2-§4.3: a fixed
// edge arena and per-vertex neighbour lists, with live degree counts and
// an extendable-vertex set maintained in O(1) per flag flip.
type OverlayGraph struct {
	vertices            int
	availableVertices   VertexSet
	nbAvailableVertices int

	edges      []edge
	neighbours [][]neighbour

	dNbTreeEdges int
	dGraphDegree []int
	dTreeDegree  []int
	extendable   VertexSet
}

// NewOverlayGraph builds an overlay over g, hiding every vertex in hidden
// from the enumeration. The edge arena is allocated with capacity g.Edges
// up front so neighbour lists can hold stable edgeRefs without ever
// triggering a reallocation (spec.md §9, "stable references from
// neighbour lists into the edge array").
func NewOverlayGraph(g *Graph, hidden VertexSet) *OverlayGraph {
	avail := topVerticesMask(g.Vertices).Without(hidden)
	o := &OverlayGraph{
		vertices:            g.Vertices,
		availableVertices:   avail,
		nbAvailableVertices: avail.Len(),
		edges:               make([]edge, 0, g.Edges),
		neighbours:          make([][]neighbour, g.Vertices),
		dGraphDegree:        make([]int, g.Vertices),
		dTreeDegree:         make([]int, g.Vertices),
	}

	for v := 0; v < g.Vertices; v++ {
		if !avail.has(NI(v)) {
			continue
		}
		o.dGraphDegree[v] = g.Adjacency[v].Intersect(avail).Len()
	}

	// Canonical edge order: u ascending, then w > u ascending, skipping any
	// endpoint not available. This, together with append order below,
	// makes enumeration deterministic (spec.md §4.2, §5 P1).
	for u := 0; u < g.Vertices-1; u++ {
		if !avail.has(NI(u)) {
			continue
		}
		for w := u + 1; w < g.Vertices; w++ {
			if !avail.has(NI(w)) || !g.Adjacency[u].has(NI(w)) {
				continue
			}
			ref := edgeRef(len(o.edges))
			o.edges = append(o.edges, edge{origin: NI(u), destination: NI(w)})
			o.neighbours[u] = append(o.neighbours[u], neighbour{other: NI(w), ref: ref})
			o.neighbours[w] = append(o.neighbours[w], neighbour{other: NI(u), ref: ref})
		}
	}

	return o
}

// refreshExtendable recomputes membership of v in extendable per I5: v is
// extendable iff it has positive tree-degree and its graph-degree exceeds
// its tree-degree.
func (o *OverlayGraph) refreshExtendable(v NI) {
	if o.dTreeDegree[v] > 0 && o.dGraphDegree[v] > o.dTreeDegree[v] {
		o.extendable = o.extendable.with(v)
	} else {
		o.extendable = o.extendable.without(v)
	}
}

// AddEdgeToGraph un-removes e (I2): restores it to the "remaining graph"
// view and increments both endpoints' graph-degree.
func (o *OverlayGraph) AddEdgeToGraph(r edgeRef) {
	e := &o.edges[r]
	e.removed = false
	o.dGraphDegree[e.origin]++
	o.dGraphDegree[e.destination]++
	o.refreshExtendable(e.origin)
	o.refreshExtendable(e.destination)
}

// RemoveEdgeFromGraph removes e from the "remaining graph" view (I2) and
// decrements both endpoints' graph-degree.
func (o *OverlayGraph) RemoveEdgeFromGraph(r edgeRef) {
	e := &o.edges[r]
	e.removed = true
	o.dGraphDegree[e.origin]--
	o.dGraphDegree[e.destination]--
	o.refreshExtendable(e.origin)
	o.refreshExtendable(e.destination)
}

// AddEdgeToTree selects e (I3, I4): adds it to the partial tree and
// increments both endpoints' tree-degree and the tree-edge counter.
func (o *OverlayGraph) AddEdgeToTree(r edgeRef) {
	e := &o.edges[r]
	e.selected = true
	o.dTreeDegree[e.origin]++
	o.dTreeDegree[e.destination]++
	o.dNbTreeEdges++
	o.refreshExtendable(e.origin)
	o.refreshExtendable(e.destination)
}

// RemoveEdgeFromTree deselects e (I3, I4): removes it from the partial
// tree and decrements both endpoints' tree-degree and the tree-edge
// counter. Calling AddEdgeToTree then RemoveEdgeFromTree on the same edge
// returns the overlay to a bit-identical state (P5), which the
// enumeration driver relies on when backtracking.
func (o *OverlayGraph) RemoveEdgeFromTree(r edgeRef) {
	e := &o.edges[r]
	e.selected = false
	o.dTreeDegree[e.origin]--
	o.dTreeDegree[e.destination]--
	o.dNbTreeEdges--
	o.refreshExtendable(e.origin)
	o.refreshExtendable(e.destination)
}

// treeComplete reports whether the partial tree spans every available
// vertex.
func (o *OverlayGraph) treeComplete() bool {
	return o.dNbTreeEdges == o.nbAvailableVertices-1
}

// isHIST reports whether the (complete) partial tree satisfies the HIST
// predicate: no available vertex has tree-degree exactly 2.
func (o *OverlayGraph) isHIST() bool {
	for v := 0; v < o.vertices; v++ {
		if o.availableVertices.has(NI(v)) && o.dTreeDegree[v] == 2 {
			return false
		}
	}
	return true
}

// Tree materialises the currently-selected edges as a standalone Graph,
// walking the edge arena in insertion order (spec.md §4.2, "extracting the
// current tree"). It is invoked only on the reporting path.
func (o *OverlayGraph) Tree() *Graph {
	t := NewGraph(o.vertices)
	for _, e := range o.edges {
		if e.selected {
			t.AddEdge(e.origin, e.destination)
		}
	}
	return t
}
