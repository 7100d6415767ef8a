// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

import "math/bits"

// VertexSet is a set of vertex numbers in [0,64), packed one bit per
// vertex into a single machine word. Vertex v occupies bit 63-v, so the
// most significant bit denotes vertex 0 -- the MSB-first convention named
// in spec.md. This makes "smallest vertex in the set" and "largest vertex
// in the set" each a single bits.LeadingZeros64/TrailingZeros64 call, and
// keeps every set operation O(1) regardless of graph size.
//
// VertexSet is the fixed-width special case of a general bitset such as
// gaissmai/bart's internal/bitset.BitSet (itself built on math/bits rather
// than hand-rolled population-count tricks): with n capped at 64 there is
// never a second word to track.
type VertexSet uint64

// Bit returns the VertexSet containing only vertex v.
func Bit(v NI) VertexSet {
	return VertexSet(1) << (63 - uint(v))
}

// Len returns the number of vertices in s.
func (s VertexSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Lowest returns the smallest vertex number present in s. The result is
// undefined if s is empty.
func (s VertexSet) Lowest() NI {
	return NI(bits.LeadingZeros64(uint64(s)))
}

// Highest returns the largest vertex number present in s. The result is
// undefined if s is empty.
func (s VertexSet) Highest() NI {
	return NI(63 - bits.TrailingZeros64(uint64(s)))
}

// has reports whether v is a member of s.
func (s VertexSet) has(v NI) bool {
	return s&Bit(v) != 0
}

// with returns s with v added.
func (s VertexSet) with(v NI) VertexSet {
	return s | Bit(v)
}

// without returns s with v removed.
func (s VertexSet) without(v NI) VertexSet {
	return s &^ Bit(v)
}

// Union returns the union of s and t.
func (s VertexSet) Union(t VertexSet) VertexSet { return s | t }

// Intersect returns the intersection of s and t.
func (s VertexSet) Intersect(t VertexSet) VertexSet { return s & t }

// Without returns s with every vertex of t removed.
func (s VertexSet) Without(t VertexSet) VertexSet { return s &^ t }

// Empty reports whether s has no members.
func (s VertexSet) Empty() bool { return s == 0 }

// firstVertex returns s.Lowest(); it exists as a free function so callers
// iterating over a mutable local copy of a set read naturally as
// "firstVertex(rest)" rather than "rest.Lowest()" mid-loop.
func firstVertex(s VertexSet) NI {
	return s.Lowest()
}

// topVerticesMask returns a VertexSet with the top n bits set -- the
// membership mask for a graph's first n vertices under the MSB-first
// convention.
func topVerticesMask(n int) VertexSet {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^VertexSet(0)
	}
	return ^VertexSet(0) << uint(64-n)
}
