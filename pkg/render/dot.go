package render

import (
	"bytes"
	"fmt"

	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
)

// ToDOT serializes a graph and its computed positions to Graphviz DOT with
// every node pinned. Positions are emitted in points with the y axis flipped,
// since DOT's coordinate system grows upward while the canvas grows downward.
// Rendering the result with the neato engine reproduces the engine's
// placement instead of computing a new one.
func ToDOT(v graph.View, pm layout.PositionMap, s layout.Settings) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  graph [bb=\"0,0,%.2f,%.2f\"];\n", s.Width, s.Height)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=%.4f, fontsize=%.1f];\n",
		2*s.NodeRadius/72, s.FontSize)
	buf.WriteString("\n")

	for _, id := range v.Nodes() {
		p := pm[id]
		fmt.Fprintf(&buf, "  %q [pos=\"%.2f,%.2f!\"];\n", id, p.X, s.Height-p.Y)
	}

	buf.WriteString("\n")
	for _, e := range v.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}
