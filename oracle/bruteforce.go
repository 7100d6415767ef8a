// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package oracle

import (
	"fmt"
	"math/bits"

	"github.com/histg/histg"
)

// MaxBruteForceEdges bounds the edge count BruteForceCount will accept:
// it enumerates every n-1 sized subset of the edge list, C(m, n-1) of
// them, so it is only practical as a test oracle for the small graphs
// spec.md §8's scenarios use (K5, C6, and similar).
const MaxBruteForceEdges = 32

// BruteForceCount enumerates every (n-1)-edge subset of graph's edge list
// by brute force, independently of the overlay/selection machinery
// FindHists and FindSpanningTrees share, and reports how many form a
// spanning tree and how many of those are additionally homeomorphically
// irreducible. It errs if graph has more than MaxBruteForceEdges edges.
func BruteForceCount(graph *histg.Graph) (trees, hists int64, err error) {
	if graph.Edges > MaxBruteForceEdges {
		return 0, 0, fmt.Errorf("oracle: %d edges exceeds brute-force limit %d", graph.Edges, MaxBruteForceEdges)
	}
	n := graph.Vertices
	if n == 0 {
		return 0, 0, nil
	}
	if n == 1 {
		return 1, 1, nil
	}

	type edgeT struct{ u, v histg.NI }
	var edgeList []edgeT
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if graph.HasEdge(histg.NI(u), histg.NI(v)) {
				edgeList = append(edgeList, edgeT{histg.NI(u), histg.NI(v)})
			}
		}
	}
	m := len(edgeList)
	k := n - 1
	if k > m {
		return 0, 0, nil
	}

	parent := make([]int, n)
	degree := make([]int, n)

	var tryMask uint64
	if k == 0 {
		tryMask = 0
	} else {
		tryMask = (uint64(1) << uint(k)) - 1
	}
	limit := uint64(1) << uint(m)

	for mask := tryMask; mask < limit; {
		if bits.OnesCount64(mask) == k {
			for v := range parent {
				parent[v] = v
				degree[v] = 0
			}
			acyclic := true
			for i := 0; i < m; i++ {
				if mask&(1<<uint(i)) == 0 {
					continue
				}
				e := edgeList[i]
				ru, rv := find(parent, int(e.u)), find(parent, int(e.v))
				if ru == rv {
					acyclic = false
					break
				}
				parent[ru] = rv
				degree[e.u]++
				degree[e.v]++
			}
			if acyclic {
				root := find(parent, 0)
				spanning := true
				for v := 1; v < n; v++ {
					if find(parent, v) != root {
						spanning = false
						break
					}
				}
				if spanning {
					trees++
					isHist := true
					for v := 0; v < n; v++ {
						if degree[v] == 2 {
							isHist = false
							break
						}
					}
					if isHist {
						hists++
					}
				}
			}
		}
		mask = nextCombination(mask)
	}
	return trees, hists, nil
}

func find(parent []int, v int) int {
	for parent[v] != v {
		v = parent[v]
	}
	return v
}

// nextCombination implements Gosper's hack: given a bitmask with k bits
// set, returns the next bitmask (in increasing numeric order) with the
// same popcount.
func nextCombination(mask uint64) uint64 {
	c := mask & (-mask)
	r := mask + c
	return (((r ^ mask) >> 2) / c) | r
}
