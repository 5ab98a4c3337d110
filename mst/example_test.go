package mst_test

import (
	"fmt"

	"github.com/katalvlaran/minspan/core"
	"github.com/katalvlaran/minspan/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on the 4-vertex square:
// 0—1 (1), 1—2 (2), 2—3 (3), 0—3 (10). The MST keeps the three cheapest
// sides with total weight 6.
func ExampleKruskal() {
	// 1. Build the graph; AddEdge validates every edge.
	g, _ := core.New(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(0, 3, 10)

	// 2. Run Kruskal over the primitive inputs.
	edges, total, err := mst.Kruskal(g.VertexCount(), g.Edges())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the selected edges.
	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	// Output: Total: 6, Edges: 0-1 1-2 2-3
}

// ExamplePrim demonstrates Prim's algorithm on a 5-vertex pentagon:
// 0—1 (1), 0—4 (12), 1—2 (2), 2—3 (3), 3—4 (5). Growing from vertex 0, the
// MST is {0—1, 1—2, 2—3, 3—4} with total weight 11.
func ExamplePrim() {
	g, _ := core.New(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 4, 12)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(3, 4, 5)

	edges, total, err := mst.Prim(g.VertexCount(), g.Adjacency(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleCompute demonstrates the options-based dispatcher.
func ExampleCompute() {
	g, _ := core.New(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 6)
	_ = g.AddEdge(0, 2, 5)

	opts := mst.DefaultOptions()
	mst.WithMethod(mst.MethodPrim)(&opts)
	mst.WithRoot(1)(&opts)

	_, total, err := mst.Compute(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Total:", total)
	// Output: Total: 9
}

func ExampleKruskal_errDisconnected() {
	// Four vertices but a single edge: no spanning tree exists.
	g, _ := core.New(4)
	_ = g.AddEdge(0, 1, 5)

	_, _, err := mst.Kruskal(g.VertexCount(), g.Edges())
	fmt.Println(err)
	// Output: mst: graph is disconnected
}

func ExamplePrim_errDisconnected() {
	g, _ := core.New(4)
	_ = g.AddEdge(0, 1, 5)

	_, _, err := mst.Prim(g.VertexCount(), g.Adjacency(), 0)
	fmt.Println(err)
	// Output: mst: graph is disconnected
}
