// Package unionfind implements the disjoint-set forest used by Kruskal's
// algorithm, with union-by-rank and path compression.
package unionfind

// DisjointSet maintains a partition of {0, …, n-1} into disjoint sets.
//
// parent forms a forest: following parent links from any element reaches the
// root that represents its set. rank bounds tree height for the union-by-rank
// heuristic. With path compression the amortized cost per operation is
// near-constant (inverse Ackermann).
//
// An element passed to Find or Union must be a valid id in [0, n); this is a
// precondition, not a runtime-checked error.
type DisjointSet struct {
	parent []int // parent[v] is v's parent; roots satisfy parent[v] == v
	rank   []int // rank[v] is an upper bound on the height of v's subtree
}

// New creates a DisjointSet of n singleton sets, one per element.
// Complexity: O(n).
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for v := range d.parent {
		d.parent[v] = v
	}

	return d
}

// Find returns the representative (root) of x's set.
//
// Path compression is applied as a side effect: every node visited on the
// way up is re-pointed directly at the discovered root. The walk is
// iterative in two passes (locate the root, then re-point), so deep forests
// cannot exhaust the stack.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) int {
	// First pass: walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: re-point every visited node at the root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge
// happened. A false return means a and b were already in the same set,
// which is how Kruskal detects that an edge would close a cycle.
//
// Union-by-rank: the root of smaller rank attaches under the root of larger
// rank; on a tie the surviving root's rank grows by one.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b int) bool {
	rootA, rootB := d.Find(a), d.Find(b)
	if rootA == rootB {
		// Already connected; merging would form a cycle.
		return false
	}

	if d.rank[rootA] < d.rank[rootB] {
		d.parent[rootA] = rootB
	} else {
		d.parent[rootB] = rootA
		if d.rank[rootA] == d.rank[rootB] {
			d.rank[rootA]++
		}
	}

	return true
}
