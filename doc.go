// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package histg enumerates and decides the existence of homeomorphically
// irreducible spanning trees (HISTs) of small simple undirected graphs.
//
// A HIST of a graph G is a spanning tree of G in which no vertex has degree
// exactly two. histg represents a graph as an n-vertex adjacency matrix
// packed one row per uint64 (so n is capped at 64), builds a mutable
// overlay over a fixed edge set, and runs a depth-first search over
// include/exclude edge decisions, pruning branches that can no longer
// produce a HIST.
//
// Representation
//
// Graph is the only representation: an immutable n x n adjacency matrix,
// one row per vertex, vertex v occupying bit 63-v of each row (so the most
// significant bit denotes vertex 0). OverlayGraph layers two mutable flags,
// removed and selected, onto a fixed arena of edges and maintains live
// degree counts and an extendable-vertex set so every flag flip is O(1).
//
// Terminology
//
// This package uses "vertex" rather than "node". An "available" vertex is
// one not excluded by a hidden-vertex mask; an "extendable" vertex is an
// available vertex already in the partial tree with at least one live,
// unselected incident edge. A tree is "complete" once it spans every
// available vertex; it is a HIST if, in addition, no available vertex has
// tree-degree 2.
//
// Entry points
//
//	FindHists            count/emit HISTs, optionally hiding a vertex set
//	FindSpanningTrees    count/emit all spanning trees (no degree-2 constraint)
//	IsHypohist           decide whether G itself has no HIST but every
//	                      single-vertex deletion of G does
//	IsHypohistPartials   decide the weaker "every deletion has a HIST" half
//
// Package io reads and writes graphs in graph6, adjacency-matrix, and
// adjacency-list text forms. Package oracle holds the Kirchhoff determinant
// and Winter contraction-enumerator routines used only to cross-check the
// core during testing; neither is imported by the core itself.
package histg
