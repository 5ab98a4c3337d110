// Package core provides the graph model for minspan: integer vertex ids,
// weighted undirected edges, and the Graph container that validates input
// as it is built.
//
// Design:
//
//   - Vertices are the integers [0, n); no separate vertex type exists.
//   - Edge is the wire format of the edge list (From, To, Weight).
//   - Arc is one adjacency entry (To, Weight); Graph.Adjacency() expands the
//     edge list into [][]Arc with both directions materialized, which is the
//     input shape Prim consumes.
//   - Validation happens exactly once, in AddEdge: out-of-range endpoints,
//     self-loops and negative weights are rejected with sentinel errors, so
//     the algorithm packages may treat their inputs as preconditions rather
//     than re-checking them.
//
// A Graph is built by a single goroutine and then read; it carries no locks.
package core
