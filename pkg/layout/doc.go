// Package layout computes 2-D positions for graph nodes.
//
// Five strategies are available behind [Compute]: [Circular], [Bipartite],
// [Hierarchical], [ForceDirected] and [Random]. Each consumes a read-only
// [graph.View] and an immutable [Settings] bundle and produces a fresh
// [PositionMap] assigning exactly one finite canvas coordinate to every node.
//
// All strategies are deterministic: the same view, strategy and settings
// always reproduce the same positions, with pseudo-randomness driven entirely
// by Settings.Seed. Structural preconditions are hard failures, not
// fallbacks: the bipartite strategy rejects non-2-colorable graphs with a
// [BipartiteError] and the hierarchical strategy rejects cyclic graphs with a
// [CycleError].
package layout
