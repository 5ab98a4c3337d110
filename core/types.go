// Package core defines the Edge, Arc, and Graph types shared by the MST
// algorithms, together with the sentinel errors used to reject malformed
// input before it ever reaches an algorithm.
//
// This file declares the value types and sentinel errors; graph.go holds
// the Graph container and its methods.
package core

import "errors"

// Sentinel errors for graph construction and edge validation.
var (
	// ErrNonPositiveOrder indicates a requested vertex count below 1.
	ErrNonPositiveOrder = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")
)

// Edge represents one undirected connection between two vertices.
//
// Vertices are dense integer identifiers in [0, n); there is no separate
// vertex entity. (From, To, Weight) and (To, From, Weight) denote the same
// edge. Invariants: From != To, Weight >= 0.
type Edge struct {
	// From is one endpoint of the edge.
	From int

	// To is the other endpoint.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Arc is a single adjacency entry: the far endpoint of an edge as seen from
// one of its vertices, plus the connecting weight.
type Arc struct {
	// To is the neighboring vertex.
	To int

	// Weight is the cost of the connecting edge.
	Weight int64
}
