package layout_test

import (
	"fmt"

	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

func ExampleCompute() {
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("c", "d")

	positions, err := layout.Compute(g, layout.Circular, layout.DefaultSettings())
	if err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	for _, id := range g.Nodes() {
		p := positions[id]
		fmt.Printf("%s: (%.1f, %.1f)\n", id, p.X, p.Y)
	}
	// Output:
	// a: (550.9, 500.0)
	// b: (500.0, 550.9)
	// c: (449.1, 500.0)
	// d: (500.0, 449.1)
}

func ExampleParseStrategy() {
	strategy, err := layout.ParseStrategy("hierarchical")
	if err != nil {
		fmt.Println("unknown strategy:", err)
		return
	}
	fmt.Println(strategy)
	// Output:
	// hierarchical
}
