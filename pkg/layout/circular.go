package layout

import (
	"math"

	"github.com/visgraphio/visgraph/pkg/graph"
)

// CircularLayout places all nodes evenly on a circle around the canvas
// center. The ring radius grows with the node count so that adjacent nodes
// keep Settings.NodeSpacing of arc length between them:
//
//	radius = max(MinCircleRadius, n·NodeSpacing / 2π)
//
// Angles follow the view's enumeration order, angle_i = 2π·i/n, so output is
// deterministic for a deterministic view. An empty graph yields an empty map;
// a single node is placed at the canvas center.
func CircularLayout(v graph.View, s Settings) (PositionMap, error) {
	nodes := v.Nodes()
	positions := make(PositionMap, len(nodes))

	n := len(nodes)
	cx, cy := s.Width/2, s.Height/2
	if n == 0 {
		return positions, nil
	}
	if n == 1 {
		positions[nodes[0]] = Point{X: cx, Y: cy}
		return positions, nil
	}

	radius := float64(n) * s.NodeSpacing / (2 * math.Pi)
	if radius < s.MinCircleRadius {
		radius = s.MinCircleRadius
	}

	step := 2 * math.Pi / float64(n)
	for i, id := range nodes {
		angle := float64(i) * step
		positions[id] = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return positions, nil
}
