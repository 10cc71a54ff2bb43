package layout

import "github.com/visgraphio/visgraph/pkg/graph"

// BipartiteLayout places a 2-colorable graph in two vertical columns: color A
// at 25% of the drawing width, color B at 75%. Within a column nodes are
// evenly spaced top to bottom in enumeration order.
//
// When left is nil the partition is computed by breadth-first 2-coloring of
// each connected component, seeded in enumeration order. When left is
// supplied it assigns the left column and every edge is checked against it.
// Either way a graph that is not bipartite fails with a [BipartiteError]
// naming a conflicting edge - there is no fallback to another layout.
func BipartiteLayout(v graph.View, s Settings, left map[string]bool) (PositionMap, error) {
	nodes := v.Nodes()
	positions := make(PositionMap, len(nodes))
	if len(nodes) == 0 {
		return positions, nil
	}

	var inLeft map[string]bool
	if left == nil {
		colored, err := twoColor(v)
		if err != nil {
			return nil, err
		}
		inLeft = colored
	} else {
		inLeft = left
		for _, e := range v.Edges() {
			if inLeft[e.From] == inLeft[e.To] {
				return nil, &BipartiteError{From: e.From, To: e.To}
			}
		}
	}

	var leftIDs, rightIDs []string
	for _, id := range nodes {
		if inLeft[id] {
			leftIDs = append(leftIDs, id)
		} else {
			rightIDs = append(rightIDs, id)
		}
	}

	x0, y0, x1, y1 := s.drawingArea()
	xLeft := x0 + 0.25*(x1-x0)
	xRight := x0 + 0.75*(x1-x0)

	placeColumn(positions, leftIDs, xLeft, y0, y1)
	placeColumn(positions, rightIDs, xRight, y0, y1)
	return positions, nil
}

// placeColumn spreads ids evenly over [top, bottom] at the given x.
// A single node sits at the vertical center.
func placeColumn(positions PositionMap, ids []string, x, top, bottom float64) {
	if len(ids) == 1 {
		positions[ids[0]] = Point{X: x, Y: (top + bottom) / 2}
		return
	}
	spacing := (bottom - top) / float64(len(ids)-1)
	for i, id := range ids {
		positions[id] = Point{X: x, Y: top + float64(i)*spacing}
	}
}

// twoColor computes a 2-coloring by breadth-first traversal over each
// connected component. The returned map holds true for the color of the
// component's seed node. An edge joining two same-colored nodes proves an
// odd cycle and aborts with a BipartiteError naming it.
func twoColor(v graph.View) (map[string]bool, error) {
	const (
		uncolored = 0
		colorA    = 1
		colorB    = 2
	)

	color := make(map[string]int, v.NodeCount())
	var queue []string

	for _, seed := range v.Nodes() {
		if color[seed] != uncolored {
			continue
		}
		color[seed] = colorA
		queue = append(queue[:0], seed)

		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]

			next := colorA
			if color[curr] == colorA {
				next = colorB
			}
			for _, nb := range v.Neighbors(curr) {
				switch color[nb] {
				case uncolored:
					color[nb] = next
					queue = append(queue, nb)
				case color[curr]:
					return nil, &BipartiteError{From: curr, To: nb}
				}
			}
		}
	}

	inLeft := make(map[string]bool, len(color))
	for id, c := range color {
		inLeft[id] = c == colorA
	}
	return inLeft, nil
}
