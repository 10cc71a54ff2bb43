// Package graph defines the read-only graph view consumed by the layout
// engine, along with a concrete adjacency implementation and JSON
// serialization.
//
// The layout engine never owns graph state: it borrows a [View] for the
// duration of a single call. Callers with their own graph representation
// implement the five-method [View] interface directly; callers without one
// build a [Graph], which preserves insertion order so that repeated layout
// runs are deterministic.
//
// # Example
//
//	g := graph.New()
//	_ = g.AddNode("a")
//	_ = g.AddNode("b")
//	_ = g.AddNode("c")
//	_ = g.AddEdge("a", "b")
//	_ = g.AddEdge("b", "c")
//
//	fmt.Println(g.Neighbors("b")) // [a c]
package graph
