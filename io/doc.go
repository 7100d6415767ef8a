// Copyright 2018 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

// Package io reads and writes histg.Graph values in three text forms:
// graph6 (the standard McKay format used by nauty and friends),
// adjacency-matrix (one binary row per line), and adjacency-list (each
// line a vertex followed by its neighbors). These are the external
// collaborators spec.md §6 names but leaves unspecified; this package
// gives them a concrete, idiomatic form modeled on soniakeys/graph/io's
// Text reader/writer split.
package io
