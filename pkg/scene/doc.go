// Package scene turns a graph and a position map into drawable primitives.
//
// [Build] consumes a read-only graph view, a layout position map and the
// layout settings and produces a [Scene]: an ordered sequence of circles,
// edge curves and optional labels. The order is the serialization draw
// order (circles first, then curves, then labels) and carries no other
// meaning. [RenderSVG] serializes a Scene to SVG markup; rasterization to
// pixel formats lives in the render package.
//
// Styling policy stays with the caller: the With* options inject label text
// and color hooks, and everything defaults to plain white-fill black-stroke
// rendering when no hook is supplied.
package scene
