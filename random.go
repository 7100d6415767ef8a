// Copyright 2016 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package histg

import (
	"math"
	"math/rand"
	"time"
)

// Gnp constructs a random simple undirected Graph on n vertices by the
// Gilbert model: each of the n(n-1)/2 possible edges is included
// independently with probability p.
//
// If r is nil, Gnp creates a new source seeded from the current time for
// one-time use.
//
// Adapted from soniakeys/graph's Gnp (itself based on Alg. 1 of Batagelj
// and Brandes, "Efficient Generation of Large Random Networks") to build
// against histg's bitset-row Graph instead of a slice-of-slices
// AdjacencyList; used by the randomised fuzz harness of spec.md §8.
func Gnp(n int, p float64, r *rand.Rand) *Graph {
	if r == nil {
		r = rand.New(rand.NewSource(randSeed()))
	}
	g := NewGraph(n)
	if n < 2 || p <= 0 {
		return g
	}
	c := 1 / math.Log(1-p)
	var v, w NI = 1, -1
	for v < NI(n) {
		w += 1 + NI(c*math.Log(1-r.Float64()))
		for {
			if w < v {
				g.AddEdge(v, w)
				break
			}
			w -= v
			v++
			if v == NI(n) {
				break
			}
		}
	}
	return g
}

// Gnm constructs a random simple undirected Graph on n vertices with
// exactly m distinct edges, chosen uniformly from all possible edges
// (the Erdos-Renyi model).
//
// If r is nil, Gnm creates a new source seeded from the current time for
// one-time use. Gnm panics if m exceeds n(n-1)/2.
//
// Adapted from soniakeys/graph's Gnm (Alg. 2 of Batagelj and Brandes) to
// build against histg's bitset-row Graph.
func Gnm(n, m int, r *rand.Rand) *Graph {
	if r == nil {
		r = rand.New(rand.NewSource(randSeed()))
	}
	re := n * (n - 1) / 2
	if m < 0 || m > re {
		panic("histg: Gnm edge count out of range")
	}
	g := NewGraph(n)
	chosen := make(map[int]struct{}, m)
	for len(chosen) < m {
		chosen[r.Intn(re)] = struct{}{}
	}
	i := 0
	for v := 1; v < n; v++ {
		for w := 0; w < v; w++ {
			if _, ok := chosen[i]; ok {
				g.AddEdge(NI(v), NI(w))
			}
			i++
		}
	}
	return g
}

// randSeed supplies a one-time seed when the caller passes a nil *rand.Rand.
func randSeed() int64 {
	return time.Now().UnixNano()
}
