package graph_test

import (
	"fmt"

	"github.com/visgraphio/visgraph/pkg/graph"
)

func ExampleGraph() {
	// Build a small triangle graph.
	g := graph.New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_ = g.AddNode("c")
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("c", "a")

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Neighbors of a:", g.Neighbors("a"))
	// Output:
	// Nodes: 3
	// Edges: 3
	// Neighbors of a: [b c]
}

func ExampleMarshal() {
	g := graph.New()
	_ = g.AddNode("x")
	_ = g.AddNode("y")
	_ = g.AddEdge("x", "y")

	data, _ := graph.Marshal(g)
	fmt.Println(string(data))
	// Output:
	// {
	//   "nodes": [
	//     "x",
	//     "y"
	//   ],
	//   "edges": [
	//     {
	//       "from": "x",
	//       "to": "y"
	//     }
	//   ]
	// }
}
