// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package oracle cross-validates histg's enumerator against two
// independent counting methods, grounded on original_source/src/kirchhoff.c
// and original_source/src/winter.c: Kirchhoff's matrix-tree theorem
// (a Laplacian cofactor, computed with gonum/mat) and a deletion-contraction
// recursion. Neither shares a line of code with the OverlayGraph-based
// enumerator in the root package, so agreement between them and
// histg.FindSpanningTrees/FindHists is meaningful evidence of correctness
// (spec.md §8, P2/P3). This package is test-only scaffolding: nothing in
// the root package imports it.
package oracle
