package layout

import (
	"math/rand"

	"github.com/visgraphio/visgraph/pkg/graph"
)

// RandomLayout places nodes uniformly at random within the drawing area,
// seeded from Settings.Seed. It ignores edges entirely and is mainly useful
// as a baseline for comparing the other strategies.
func RandomLayout(v graph.View, s Settings) (PositionMap, error) {
	nodes := v.Nodes()
	positions := make(PositionMap, len(nodes))

	x0, y0, x1, y1 := s.drawingArea()
	rng := rand.New(rand.NewSource(int64(s.Seed)))

	for _, id := range nodes {
		positions[id] = Point{
			X: x0 + rng.Float64()*(x1-x0),
			Y: y0 + rng.Float64()*(y1-y0),
		}
	}
	return positions, nil
}
