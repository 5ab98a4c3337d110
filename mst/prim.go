// Package mst provides an implementation of Prim's Minimum Spanning Tree
// algorithm, growing the tree from a start vertex using a min-heap.
package mst

import (
	"github.com/katalvlaran/minspan/core"
	"github.com/katalvlaran/minspan/minheap"
)

// Prim computes the Minimum Spanning Tree of the undirected, weighted graph
// given by its vertex count n and adjacency view adj (as produced by
// core.Graph.Adjacency, one Arc per edge per direction, len(adj) == n),
// growing outward from start.
//
// The choice of start never changes the total weight, only which edges
// represent it when equal-weight alternatives exist.
//
// Error Conditions:
//   - ErrStartOutOfRange : start is not in [0, n).
//   - ErrDisconnected    : n < 1, or the component reachable from start does
//     not cover all n vertices.
//
// Steps:
//  1. Handle trivial orders and validate start.
//  2. Mark start visited; push every Arc incident to start onto the heap.
//  3. Pop the minimum-weight entry. An already-visited destination is a
//     stale entry: discard it and pop again (expected, not an error).
//  4. Otherwise visit the destination, keep the edge, accumulate its weight,
//     and push the Arcs from it to still-unvisited neighbors.
//  5. Stop once n-1 edges are selected or the heap is exhausted; fewer than
//     n-1 selections → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(n int, adj [][]core.Arc, start int) ([]core.Edge, int64, error) {
	// 1. Trivial orders and start validation.
	if n < 1 {
		return nil, 0, ErrDisconnected
	}
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}
	if n == 1 {
		// Single vertex: empty edge list, zero total weight.
		return []core.Edge{}, 0, nil
	}

	visited := make([]bool, n)
	mstEdges := make([]core.Edge, 0, n-1)
	var total int64

	// 2. Seed the frontier with everything incident to start.
	pq := minheap.New()
	visited[start] = true
	for _, a := range adj[start] {
		if !visited[a.To] {
			pq.Push(minheap.Item{From: start, To: a.To, Weight: a.Weight})
		}
	}

	// 3–4. Repeatedly take the cheapest frontier edge that reaches a new
	// vertex.
	for len(mstEdges) < n-1 {
		it, ok := pq.Pop()
		if !ok {
			// Heap exhausted before the tree spans: disconnected.
			break
		}
		if visited[it.To] {
			// Stale entry; a cheaper path already claimed this vertex.
			continue
		}

		visited[it.To] = true
		mstEdges = append(mstEdges, core.Edge{From: it.From, To: it.To, Weight: it.Weight})
		total += it.Weight

		for _, a := range adj[it.To] {
			if !visited[a.To] {
				pq.Push(minheap.Item{From: it.To, To: a.To, Weight: a.Weight})
			}
		}
	}

	// 5. A spanning tree needs exactly n-1 edges.
	if len(mstEdges) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mstEdges, total, nil
}
