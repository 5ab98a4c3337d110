package core

// Graph is an immutable-once-built snapshot of a weighted, undirected graph:
// a vertex count n plus an edge list over vertices [0, n).
//
// Parallel edges are permitted; the MST algorithms handle them naturally
// (the cheaper one wins). Self-loops and negative weights are rejected at
// AddEdge time, so downstream code may assume well-formed edges.
type Graph struct {
	n     int    // number of vertices, always >= 1
	edges []Edge // accepted edges, in insertion order
}

// New creates an empty Graph over n vertices.
// Returns ErrNonPositiveOrder when n < 1.
// Complexity: O(1).
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrNonPositiveOrder
	}

	return &Graph{n: n}, nil
}

// AddEdge validates and records an undirected edge u—v with weight w.
//
// Error conditions:
//   - ErrVertexOutOfRange : u or v is outside [0, n).
//   - ErrSelfLoop         : u == v.
//   - ErrNegativeWeight   : w < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	// Validate endpoints before the loop/weight checks so that range errors
	// win when several violations coincide.
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// VertexCount reports n, the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount reports the number of accepted edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex id in this graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Edges returns a copy of the edge list in insertion order.
// Callers may sort or mutate the result freely without affecting the Graph.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Adjacency derives the neighbor view consumed by Prim: one slice of Arcs
// per vertex, with one entry per edge per direction. Parallel edges yield
// parallel Arcs.
// Complexity: O(V + E) time and memory.
func (g *Graph) Adjacency() [][]Arc {
	adj := make([][]Arc, g.n)
	for _, e := range g.edges {
		// Record both directions: the edge is undirected.
		adj[e.From] = append(adj[e.From], Arc{To: e.To, Weight: e.Weight})
		adj[e.To] = append(adj[e.To], Arc{To: e.From, Weight: e.Weight})
	}

	return adj
}
