package layout

import (
	"slices"

	"github.com/visgraphio/visgraph/pkg/graph"
)

// HierarchicalLayout arranges a directed acyclic graph in layers.
//
// Layer assignment is longest-path: each node's layer is the length of the
// longest path reaching it from any in-degree-zero node, computed by
// topological processing, so every edge points from a strictly lower layer to
// a strictly higher one. A graph containing a directed cycle (self-loops
// included) fails with a [CycleError] - the acyclicity precondition is hard,
// not best-effort.
//
// Within each layer the initial left-to-right order is enumeration order;
// Settings.BarycenterPasses alternating downward and upward sweeps then
// reorder each layer by the mean position of its neighbors in the adjacent
// layer. This reduces edge crossings heuristically without guaranteeing a
// minimum.
//
// Layers advance along the axis selected by Settings.Orientation, spaced by
// Settings.LayerSpacing; within a layer nodes are spaced by
// Settings.NodeSpacing and centered on the cross axis.
func HierarchicalLayout(v graph.View, s Settings) (PositionMap, error) {
	nodes := v.Nodes()
	positions := make(PositionMap, len(nodes))
	if len(nodes) == 0 {
		return positions, nil
	}

	out := make(map[string][]string, len(nodes))
	in := make(map[string][]string, len(nodes))
	for _, e := range v.Edges() {
		out[e.From] = append(out[e.From], e.To)
		in[e.To] = append(in[e.To], e.From)
	}

	if back, ok := findBackEdge(nodes, out); ok {
		return nil, &CycleError{From: back.From, To: back.To}
	}

	layerOf := assignLayers(nodes, out)
	layers := buildLayers(nodes, layerOf)
	for pass := 0; pass < s.BarycenterPasses; pass++ {
		sweepDown(layers, layerOf, in)
		sweepUp(layers, layerOf, out)
	}

	place(positions, layers, s)
	return positions, nil
}

// findBackEdge runs a depth-first search with white/gray/black coloring over
// every node in enumeration order and returns the first back edge found.
func findBackEdge(nodes []string, out map[string][]string) (graph.Edge, bool) {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(nodes))
	var back graph.Edge
	var found bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range out[id] {
			if found {
				return
			}
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				back = graph.Edge{From: id, To: child}
				found = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range nodes {
		if color[id] == white {
			dfs(id)
			if found {
				return back, true
			}
		}
	}
	return graph.Edge{}, false
}

// assignLayers computes longest-path layers with Kahn's algorithm. Sources
// (in-degree zero) start at layer 0; every other node lands one past its
// deepest parent. Assumes the graph is acyclic.
func assignLayers(nodes []string, out map[string][]string) map[string]int {
	inDegree := make(map[string]int, len(nodes))
	for _, children := range out {
		for _, c := range children {
			inDegree[c]++
		}
	}

	layer := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))
	for _, id := range nodes {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range out[curr] {
			if next := layer[curr] + 1; next > layer[child] {
				layer[child] = next
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	return layer
}

// buildLayers groups nodes by layer index, preserving enumeration order
// within each layer.
func buildLayers(nodes []string, layerOf map[string]int) [][]string {
	maxLayer := 0
	for _, id := range nodes {
		if layerOf[id] > maxLayer {
			maxLayer = layerOf[id]
		}
	}
	layers := make([][]string, maxLayer+1)
	for _, id := range nodes {
		l := layerOf[id]
		layers[l] = append(layers[l], id)
	}
	return layers
}

// sweepDown reorders layers 1..max by the barycenter of each node's
// neighbors in the layer above.
func sweepDown(layers [][]string, layerOf map[string]int, in map[string][]string) {
	for l := 1; l < len(layers); l++ {
		reorder(layers[l], layers[l-1], layerOf, l-1, in)
	}
}

// sweepUp reorders layers max-1..0 by the barycenter of each node's
// neighbors in the layer below.
func sweepUp(layers [][]string, layerOf map[string]int, out map[string][]string) {
	for l := len(layers) - 2; l >= 0; l-- {
		reorder(layers[l], layers[l+1], layerOf, l+1, out)
	}
}

// reorder stably sorts layer by the mean index of each node's adjacent-layer
// neighbors. Nodes without neighbors in the reference layer keep their
// current index as barycenter, which leaves them roughly in place.
func reorder(layer, ref []string, layerOf map[string]int, refLayer int, adj map[string][]string) {
	refPos := make(map[string]int, len(ref))
	for i, id := range ref {
		refPos[id] = i
	}

	bary := make(map[string]float64, len(layer))
	for i, id := range layer {
		sum, count := 0.0, 0
		for _, nb := range adj[id] {
			if layerOf[nb] == refLayer {
				sum += float64(refPos[nb])
				count++
			}
		}
		if count == 0 {
			bary[id] = float64(i)
		} else {
			bary[id] = sum / float64(count)
		}
	}

	slices.SortStableFunc(layer, func(a, b string) int {
		switch {
		case bary[a] < bary[b]:
			return -1
		case bary[a] > bary[b]:
			return 1
		default:
			return 0
		}
	})
}

// place converts layer/order indices into canvas coordinates. The layer axis
// advances from the margin by LayerSpacing per layer; the cross axis centers
// each layer and spaces nodes by NodeSpacing.
func place(positions PositionMap, layers [][]string, s Settings) {
	x0, y0, _, _ := s.drawingArea()
	crossCenterX := s.Width / 2
	crossCenterY := s.Height / 2

	for l, layer := range layers {
		along := float64(l) * s.LayerSpacing
		for i, id := range layer {
			offset := (float64(i) - float64(len(layer)-1)/2) * s.NodeSpacing
			switch s.Orientation {
			case BottomToTop:
				positions[id] = Point{X: crossCenterX + offset, Y: s.Height - y0 - along}
			case LeftToRight:
				positions[id] = Point{X: x0 + along, Y: crossCenterY + offset}
			case RightToLeft:
				positions[id] = Point{X: s.Width - x0 - along, Y: crossCenterY + offset}
			default: // TopToBottom
				positions[id] = Point{X: crossCenterX + offset, Y: y0 + along}
			}
		}
	}
}
