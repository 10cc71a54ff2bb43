package scene

import (
	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

// Primitive is one drawable instruction. The variant set is sealed: a Scene
// contains only [Circle], [Curve] and [Label] values.
type Primitive interface {
	isPrimitive()
}

// Circle draws a node as a filled circle with a black outline.
type Circle struct {
	// Node is the owning node ID.
	Node   string
	Center layout.Point
	Radius float64
	Fill   string
}

// Curve draws an edge. A straight edge runs Start to End; a bent edge is a
// quadratic Bézier through Control. Endpoints are trimmed to the owning
// nodes' circle boundaries where the geometry allows it.
type Curve struct {
	// Edge is the owning edge.
	Edge       graph.Edge
	Start, End layout.Point
	Control    layout.Point
	// Bent selects the Bézier form. Parallel edges and self-loops bend;
	// simple edges stay straight with Control at the midpoint.
	Bent  bool
	Color string
	Width float64
}

// Label draws anchored text, horizontally and vertically centered.
type Label struct {
	Text   string
	Anchor layout.Point
	Size   float64
	Color  string
}

func (Circle) isPrimitive() {}
func (Curve) isPrimitive()  {}
func (Label) isPrimitive()  {}

// Scene is an immutable ordered sequence of primitives plus the canvas
// dimensions for the document bounds. Primitives appear in draw order:
// circles, then curves, then labels.
type Scene struct {
	Width, Height float64
	Primitives    []Primitive
}
