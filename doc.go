// Package minspan computes Minimum Spanning Trees of weighted, undirected
// graphs entered interactively, via either Kruskal's or Prim's algorithm.
//
// The repository is organized into small concern packages:
//
//	core/      — Edge, Arc and Graph types with integer vertex ids, input
//	             validation, and the adjacency view consumed by Prim
//	unionfind/ — disjoint-set with union-by-rank and path compression
//	minheap/   — binary min-heap priority queue of candidate edges
//	mst/       — Kruskal, Prim, and an options-based Compute dispatcher
//	cmd/       — the interactive minspan CLI (prompt in, styled tree out)
//
// The algorithmic packages perform no I/O and hold no global state: a Graph
// snapshot goes in, an ordered edge sequence plus total weight (or a typed
// error) comes out. Everything interactive lives under cmd/ and internal/.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square of four vertices; the MST keeps the three cheapest sides.
//
//	go get github.com/katalvlaran/minspan
package minspan
