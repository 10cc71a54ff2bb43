package layout

import (
	"math"

	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/graph"
)

// Point is a finite 2-D canvas coordinate. A strategy that returns
// successfully never emits NaN or infinite components; the epsilon clamps in
// the force simulation exist to keep that unreachable.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// PositionMap assigns exactly one position to every node of the graph view a
// strategy was computed for: no missing entries, no extraneous entries.
// It is a freshly allocated output owned by the caller; the engine keeps no
// reference after returning.
type PositionMap map[string]Point

// Strategy selects one of the layout algorithms. The set is closed:
// [Compute] dispatches over it exhaustively.
type Strategy int

const (
	// Circular places nodes evenly on a ring sized to avoid overlap.
	Circular Strategy = iota
	// Bipartite places a 2-colorable graph in two vertical columns.
	Bipartite
	// Hierarchical layers a DAG by longest path and reduces crossings
	// with barycenter sweeps.
	Hierarchical
	// ForceDirected runs a seeded spring-electrical simulation.
	ForceDirected
	// Random places nodes uniformly in the drawing area, seeded.
	Random
)

var strategyNames = map[Strategy]string{
	Circular:      "circular",
	Bipartite:     "bipartite",
	Hierarchical:  "hierarchical",
	ForceDirected: "force-directed",
	Random:        "random",
}

// String returns the canonical lower-case strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy converts a strategy name to a Strategy.
// Returns an INVALID_STRATEGY error for unknown names.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStrategy, "unknown layout strategy %q", name)
}

// Strategies returns all strategy names in dispatch order.
func Strategies() []string {
	return []string{
		Circular.String(),
		Bipartite.String(),
		Hierarchical.String(),
		ForceDirected.String(),
		Random.String(),
	}
}

// Compute runs the selected strategy against the graph view and returns a
// position map covering exactly the view's node set, or a typed layout error.
//
// The view is borrowed for the duration of the call only; Compute holds no
// state between invocations. All computation is synchronous: a caller wanting
// bounded latency bounds Settings.Iterations rather than cancelling.
//
// The strategies can also be called directly ([CircularLayout],
// [BipartiteLayout] with an explicit partition, [HierarchicalLayout],
// [ForceDirectedLayout] with a progress callback, [RandomLayout]).
func Compute(v graph.View, strategy Strategy, s Settings) (PositionMap, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch strategy {
	case Circular:
		return CircularLayout(v, s)
	case Bipartite:
		return BipartiteLayout(v, s, nil)
	case Hierarchical:
		return HierarchicalLayout(v, s)
	case ForceDirected:
		return ForceDirectedLayout(v, s, nil)
	case Random:
		return RandomLayout(v, s)
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown layout strategy %d", int(strategy))
	}
}
