// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the io package. Callers branch on these with
// errors.Is;
// they are never restated as formatted strings at the definition site.
var (
	// ErrTooManyVertices is returned when a graph would exceed MaxVertices.
	ErrTooManyVertices = errors.New("histg: vertex count exceeds the 64-vertex ceiling")

	// ErrNilCounters names the nil-*Counters contract violation. No
	// function in this module returns it: FindHists, FindSpanningTrees,
	// IsHypohist and IsHypohistPartials panic on a nil *Counters.
	ErrNilCounters = errors.New("histg: nil Counters")

	// ErrNonSquareMatrix is returned by helpers that expect an n x n
	// adjacency matrix and are given a ragged one.
	ErrNonSquareMatrix = errors.New("histg: adjacency matrix is not square")

	// ErrMalformedGraph6 is returned by the io package when a graph6
	// string cannot be parsed.
	ErrMalformedGraph6 = errors.New("histg: malformed graph6 string")
)

// wrapf prefixes err's message with the calling operation's name, while
// leaving the sentinel intact for errors.Is.
func wrapf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
