package layout

import (
	"math"
	"math/rand"

	"github.com/visgraphio/visgraph/pkg/graph"
)

// minDistance clamps pairwise distances in the force simulation. Coincident
// nodes would otherwise divide by zero and propagate non-finite coordinates;
// with the clamp a successful simulation can never produce them.
const minDistance = 1e-2

// temperatureFactor sets the initial temperature as a fraction of the
// smaller drawing-area dimension.
const temperatureFactor = 0.1

// Progress receives simulation updates after each iteration. The callback
// runs synchronously on the simulation goroutine; keep it cheap.
type Progress func(iteration, total int, maxDisplacement float64)

// ForceDirectedLayout runs a spring-electrical simulation.
//
// Initial positions are pseudo-random within the drawing area, seeded from
// Settings.Seed, so identical inputs reproduce identical output bit for bit.
// Each iteration applies:
//
//   - repulsion between every unordered pair of distinct nodes, proportional
//     to Repulsion·k²/d² and directed apart, with d clamped to a minimum
//     distance so coincident nodes never produce non-finite displacement
//   - spring attraction along every edge, proportional to Spring·(d − k) and
//     directed toward the other endpoint
//   - a displacement cap (temperature) that cools linearly over the run
//
// where k is Settings.IdealEdgeLength, or √(area/n) when zero. Positions are
// clamped to the drawing area after every iteration, so the result is always
// within canvas bounds minus margin. The simulation runs Settings.Iterations
// times, exiting early once the maximum per-node displacement falls below
// Settings.Threshold (when non-zero).
//
// Pairwise repulsion is O(n²) per iteration by design; callers with large
// graphs trade iteration count against runtime. progress may be nil.
func ForceDirectedLayout(v graph.View, s Settings, progress Progress) (PositionMap, error) {
	nodes := v.Nodes()
	positions := make(PositionMap, len(nodes))

	n := len(nodes)
	if n == 0 {
		return positions, nil
	}
	if n == 1 {
		positions[nodes[0]] = Point{X: s.Width / 2, Y: s.Height / 2}
		return positions, nil
	}

	x0, y0, x1, y1 := s.drawingArea()
	rng := rand.New(rand.NewSource(int64(s.Seed)))

	pos := make([]Point, n)
	for i := range nodes {
		pos[i] = Point{
			X: x0 + rng.Float64()*(x1-x0),
			Y: y0 + rng.Float64()*(y1-y0),
		}
	}

	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	// Springs act once per edge occurrence; self-loops exert no net force.
	type spring struct{ a, b int }
	var springs []spring
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		springs = append(springs, spring{index[e.From], index[e.To]})
	}

	k := s.IdealEdgeLength
	if k == 0 {
		k = math.Sqrt((x1 - x0) * (y1 - y0) / float64(n))
	}
	initialTemp := temperatureFactor * math.Min(x1-x0, y1-y0)

	disp := make([]Point, n)
	for it := 0; it < s.Iterations; it++ {
		for i := range disp {
			disp[i] = Point{}
		}

		// Pairwise repulsion, O(n²).
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				d := math.Max(math.Hypot(dx, dy), minDistance)

				f := s.Repulsion * k * k / (d * d)
				fx := dx / d * f
				fy := dy / d * f
				disp[i].X += fx
				disp[i].Y += fy
				disp[j].X -= fx
				disp[j].Y -= fy
			}
		}

		// Spring attraction along edges.
		for _, sp := range springs {
			dx := pos[sp.a].X - pos[sp.b].X
			dy := pos[sp.a].Y - pos[sp.b].Y
			d := math.Max(math.Hypot(dx, dy), minDistance)

			f := s.Spring * (d - k)
			fx := dx / d * f
			fy := dy / d * f
			disp[sp.a].X -= fx
			disp[sp.a].Y -= fy
			disp[sp.b].X += fx
			disp[sp.b].Y += fy
		}

		// Linear cooling: the cap shrinks toward zero over the run.
		temp := initialTemp * (1 - float64(it)/float64(s.Iterations))

		maxDisp := 0.0
		for i := range pos {
			dlen := math.Hypot(disp[i].X, disp[i].Y)
			if dlen > 0 {
				limited := math.Min(dlen, temp)
				pos[i].X += disp[i].X / dlen * limited
				pos[i].Y += disp[i].Y / dlen * limited
				if limited > maxDisp {
					maxDisp = limited
				}
			}
			pos[i].X = clamp(pos[i].X, x0, x1)
			pos[i].Y = clamp(pos[i].Y, y0, y1)
		}

		if progress != nil {
			progress(it+1, s.Iterations, maxDisp)
		}
		if s.Threshold > 0 && maxDisp < s.Threshold {
			break
		}
	}

	for i, id := range nodes {
		positions[id] = pos[i]
	}
	return positions, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
