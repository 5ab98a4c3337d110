// Package mst provides two battle-tested algorithms for computing the
// Minimum Spanning Tree (MST) of a weighted, undirected graph described by
// a vertex count and a validated edge list: Kruskal's and Prim's.
//
// # What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E of exactly |V|-1 edges that connects all vertices with
//     minimum total weight and no cycles.
//
//   - Why MST matters: cost-efficient network design, clustering (cut the
//     largest tree edges), and as a subroutine in approximation algorithms.
//
// # Algorithms Provided
//
//   - Kruskal(n, edges) ([]core.Edge, int64, error)
//
//     Strategy: sort all edges by weight, then scan from cheapest to most
//     expensive, merging components with a disjoint-set (union-find) and
//     skipping edges whose endpoints are already connected. Stop once n-1
//     edges are in.
//
//     Complexity: O(E log E + α(V)·E) time, dominated by the sort;
//     O(V + E) memory.
//
//     Determinism: the sort is stable, so equal weights keep the edge list's
//     insertion order and ties break predictably.
//
//   - Prim(n, adj, start) ([]core.Edge, int64, error)
//
//     Strategy: grow a single tree from start. Keep a min-heap of candidate
//     edges from the tree to outside vertices; repeatedly take the cheapest
//     one that reaches a new vertex. Entries whose destination was visited
//     in the meantime are stale and simply discarded.
//
//     Complexity: O(E log V) time (each edge is pushed and popped at most
//     twice), O(V + E) memory.
//
// Both algorithms compute a true MST; for graphs with distinct weights they
// select the same edges, and for ties they agree on the total weight.
//
// # Error Conditions
//
//   - ErrDisconnected      : fewer than n-1 edges can be selected, so no
//     spanning tree exists. Returned by both algorithms; no partial result
//     accompanies it.
//   - ErrStartOutOfRange   : Prim's start vertex is outside [0, n).
//   - ErrNilGraph          : Compute received a nil graph.
//   - ErrUnknownMethod     : Compute received an unrecognized Options.Method.
//
// Input shape violations (out-of-range endpoints, self-loops, negative
// weights) never reach this package: core.Graph.AddEdge rejects them, and
// the primitive entry points document them as preconditions.
//
// For usage, see example_test.go in this package.
package mst
