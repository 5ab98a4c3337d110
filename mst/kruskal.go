// Package mst provides an implementation of Kruskal's Minimum Spanning Tree
// algorithm over a validated integer-vertex edge list.
package mst

import (
	"sort"

	"github.com/katalvlaran/minspan/core"
	"github.com/katalvlaran/minspan/unionfind"
)

// Kruskal computes the Minimum Spanning Tree of the undirected, weighted
// graph given by its vertex count n and edge list. It uses a disjoint-set
// (union-find) structure with path compression and union by rank.
//
// Input is assumed validated (0 <= From,To < n, From != To, Weight >= 0);
// see core.Graph.AddEdge. Parallel edges are fine: the cheaper one sorts
// first and the later ones close cycles.
//
// Error Conditions:
//   - ErrDisconnected : n < 1, or fewer than n-1 edges could be selected.
//
// Steps:
//  1. Handle trivial orders: n < 1 → ErrDisconnected; n == 1 → empty MST.
//  2. Copy and sort the edges by ascending Weight (sort.SliceStable keeps
//     insertion order among equal weights, so ties break deterministically).
//  3. Initialize a DisjointSet over the n vertices.
//  4. Scan the sorted edges; whenever Union reports a merge, keep the edge
//     and accumulate its weight. Stop early at n-1 selected edges; the
//     remaining edges are never inspected.
//  5. Fewer than n-1 selections after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(n int, edges []core.Edge) ([]core.Edge, int64, error) {
	// 1. Trivial orders.
	if n < 1 {
		// No vertices: by convention a disconnected graph.
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		// Single vertex: the MST is trivially empty with total weight 0.
		return []core.Edge{}, 0, nil
	}

	// 2. Sort a copy so the caller's slice keeps its order.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. One DisjointSet per invocation; consumed and discarded here.
	dsu := unionfind.New(n)

	// 4. Accrete edges cheapest-first, skipping any that close a cycle.
	mstEdges := make([]core.Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		if !dsu.Union(e.From, e.To) {
			// Endpoints already connected; the edge would form a cycle.
			continue
		}
		mstEdges = append(mstEdges, e)
		total += e.Weight
		if len(mstEdges) == n-1 {
			// Spanning tree complete.
			break
		}
	}

	// 5. A spanning tree needs exactly n-1 edges.
	if len(mstEdges) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mstEdges, total, nil
}
