// Package pkg provides the core libraries for visgraph graph visualization.
//
// # Overview
//
// Visgraph computes 2-D layouts for abstract graphs and renders them as
// vector scenes. The pkg directory is organized as follows:
//
//   - [graph] - Read-only graph view interface plus a concrete adjacency
//     implementation and JSON serialization
//   - [layout] - Layout strategies (circular, bipartite, hierarchical,
//     force-directed, random) and validated settings
//   - [scene] - Scene builder turning positions into drawable primitives,
//     plus the SVG exporter
//   - [render] - DOT export and the optional rasterization collaborator
//   - [pipeline] - Orchestration (layout → scene → export) with caching
//   - [cache] - Cache backends (file, Redis, null) and content hashing
//   - [store] - Persistent render store (MongoDB, memory)
//   - [errors] - Structured error codes shared by CLI and API
//   - [observability] - Optional instrumentation hooks
//
// # Quick Start
//
// Compute a layout and render it to SVG:
//
//	import (
//	    "github.com/visgraphio/visgraph/pkg/graph"
//	    "github.com/visgraphio/visgraph/pkg/layout"
//	    "github.com/visgraphio/visgraph/pkg/scene"
//	)
//
//	g := graph.New()
//	_ = g.AddNode("a")
//	_ = g.AddNode("b")
//	_ = g.AddEdge("a", "b")
//
//	settings := layout.DefaultSettings()
//	positions, _ := layout.Compute(g, layout.Circular, settings)
//	sc, _ := scene.Build(g, positions, settings)
//	svg := scene.RenderSVG(sc)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test -run Example     # Examples only
//
// [graph]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/graph
// [layout]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/layout
// [scene]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/scene
// [render]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/cache
// [store]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/store
// [errors]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/visgraphio/visgraph/pkg/observability
package pkg
