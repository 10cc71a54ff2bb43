// Package render bridges computed layouts to Graphviz for rasterization.
//
// The scene package owns the native SVG exporter; this package covers the
// formats beyond it. [ToDOT] serializes a graph with pinned positions into
// Graphviz DOT markup, and [GraphvizRasterizer] feeds that markup through
// the neato engine to produce PNG bytes. Pinning keeps Graphviz from
// recomputing the layout, so the raster output matches the engine's own
// placement.
package render
