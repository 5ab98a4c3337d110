// Package mst defines configuration options and sentinel errors for MST
// computation. It supports selecting between Kruskal and Prim via Options.
package mst

import (
	"errors"

	"github.com/katalvlaran/minspan/core"
)

// ErrDisconnected indicates that fewer than n-1 edges could be selected, so
// no spanning tree covering all vertices exists. Neither algorithm returns
// a partial result alongside it.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrStartOutOfRange indicates that Prim's start vertex is not in [0, n).
var ErrStartOutOfRange = errors.New("mst: start vertex out of range")

// ErrNilGraph indicates that Compute was handed a nil *core.Graph.
var ErrNilGraph = errors.New("mst: nil graph")

// ErrUnknownMethod indicates an Options.Method that names no algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Options configures which MST algorithm Compute runs, and for Prim, which
// starting vertex to grow from. Use DefaultOptions() for a default setup
// (Kruskal).
//
// Fields:
//
//	Method string — one of MethodKruskal or MethodPrim.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
//
// See: mst.Kruskal, mst.Prim.
// Complexity: O(E log E) for Kruskal, O(E log V) for Prim.
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal over g's edge list.
//	– If opts.Method == MethodPrim:    builds g's adjacency view and calls
//	                                   Prim from opts.Root.
//	– Otherwise:                       returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the MST in selection order (empty for one vertex).
//	int64       — total weight of the MST (zero if no edges).
//	error       — non-nil if computation cannot proceed.
//
// Note: optional scaffolding; Kruskal and Prim can still be called directly
// with primitive inputs.
func Compute(g *core.Graph, opts Options) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// Dispatch by method name.
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g.VertexCount(), g.Edges())
	case MethodPrim:
		return Prim(g.VertexCount(), g.Adjacency(), opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
