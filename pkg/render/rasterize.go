package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/visgraphio/visgraph/pkg/errors"
)

// Rasterizer converts DOT markup into a pixel image. Implementations must be
// safe for concurrent use.
type Rasterizer interface {
	Rasterize(ctx context.Context, dot []byte) ([]byte, error)
}

// GraphvizRasterizer rasterizes DOT markup to PNG with the neato engine.
// Each call builds and tears down its own Graphviz instance; the cgo handles
// underneath are not safely shareable across goroutines.
type GraphvizRasterizer struct{}

var _ Rasterizer = GraphvizRasterizer{}

// Rasterize renders pinned DOT markup to PNG bytes.
func (GraphvizRasterizer) Rasterize(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "initialize graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT markup")
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rasterize graph")
	}
	return buf.Bytes(), nil
}
