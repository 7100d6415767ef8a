// Copyright 2014 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package oracle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/histg/histg"
	"github.com/histg/histg/oracle"
)

// TestRandomGraphsAgreeOnSpanningTreeCount runs the randomised fuzz harness
// spec.md §8 calls for: random graphs of 6-10 vertices at varying edge
// densities, checking FindSpanningTrees against both independent oracles,
// and FindHists against the brute-force oracle when the edge count keeps
// brute force tractable (P3).
func TestRandomGraphsAgreeOnSpanningTreeCount(t *testing.T) {
	r := rand.New(rand.NewSource(20260730))
	for n := 6; n <= 10; n++ {
		for _, p := range []float64{0.2, 0.4, 0.6, 0.8} {
			g := histg.Gnp(n, p, r)

			c := &histg.Counters{}
			histg.FindSpanningTrees(g, nil, false, c)

			want := oracle.SpanningTreeCountKirchhoff(g)
			assert.EqualValuesf(t, want, c.TreesThisRun, "n=%d p=%v: FindSpanningTrees vs Kirchhoff", n, p)
			assert.EqualValuesf(t, want, oracle.SpanningTreeCountWinter(g), "n=%d p=%v: Kirchhoff vs Winter", n, p)

			if g.Edges <= oracle.MaxBruteForceEdges {
				_, hists, err := oracle.BruteForceCount(g)
				assert.NoError(t, err)
				cHist := &histg.Counters{}
				histg.FindHists(g, 0, nil, false, cHist)
				assert.EqualValuesf(t, hists, cHist.HistsThisRun, "n=%d p=%v: FindHists vs brute force", n, p)
			}
		}
	}
}
