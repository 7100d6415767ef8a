// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histg/histg"
	"github.com/histg/histg/oracle"
)

func complete(n int) *histg.Graph {
	g := histg.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(histg.NI(u), histg.NI(v))
		}
	}
	return g
}

func cycle(n int) *histg.Graph {
	g := histg.NewGraph(n)
	for v := 0; v < n; v++ {
		g.AddEdge(histg.NI(v), histg.NI((v+1)%n))
	}
	return g
}

// K4 has 16 spanning trees by Cayley's formula; both independent oracles
// must agree with histg.FindSpanningTrees (P2).
func TestKirchhoffAndWinterAgreeOnK4(t *testing.T) {
	g := complete(4)
	assert.EqualValues(t, 16, oracle.SpanningTreeCountKirchhoff(g))
	assert.EqualValues(t, 16, oracle.SpanningTreeCountWinter(g))

	c := &histg.Counters{}
	histg.FindSpanningTrees(g, nil, false, c)
	assert.Equal(t, 16, c.TreesThisRun)
}

// Cn has exactly n spanning trees (remove any one of its n edges).
func TestKirchhoffAndWinterAgreeOnCycle(t *testing.T) {
	g := cycle(6)
	assert.EqualValues(t, 6, oracle.SpanningTreeCountKirchhoff(g))
	assert.EqualValues(t, 6, oracle.SpanningTreeCountWinter(g))
}

func TestSpanningTreeCountersAgreeOnK5(t *testing.T) {
	g := complete(5)
	want := oracle.SpanningTreeCountKirchhoff(g)
	require.Equal(t, want, oracle.SpanningTreeCountWinter(g))

	c := &histg.Counters{}
	histg.FindSpanningTrees(g, nil, false, c)
	assert.EqualValues(t, want, c.TreesThisRun)
}

// BruteForceCount cross-validates the HIST count against histg.FindHists
// and the spanning-tree count against histg.FindSpanningTrees on a small
// graph (P3). FindHists' own TreesThisRun is not compared: its pruning
// skips trees that cannot be HISTs.
func TestBruteForceAgreesWithFindHistsOnK5(t *testing.T) {
	g := complete(5)
	trees, hists, err := oracle.BruteForceCount(g)
	require.NoError(t, err)
	assert.EqualValues(t, 125, trees) // Cayley: 5^3

	c := &histg.Counters{}
	histg.FindHists(g, 0, nil, false, c)
	assert.EqualValues(t, hists, c.HistsThisRun)

	cSpanning := &histg.Counters{}
	histg.FindSpanningTrees(g, nil, false, cSpanning)
	assert.EqualValues(t, trees, cSpanning.TreesThisRun)
}

func TestBruteForceAgreesWithFindHistsOnStar(t *testing.T) {
	g := histg.NewGraph(6)
	for v := 1; v < 6; v++ {
		g.AddEdge(0, histg.NI(v))
	}
	trees, hists, err := oracle.BruteForceCount(g)
	require.NoError(t, err)
	assert.EqualValues(t, 1, trees)
	assert.EqualValues(t, 1, hists)
}

func TestBruteForceRejectsTooManyEdges(t *testing.T) {
	g := complete(9) // 36 edges > MaxBruteForceEdges
	_, _, err := oracle.BruteForceCount(g)
	assert.Error(t, err)
}
