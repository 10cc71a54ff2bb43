package layout

import (
	"errors"
	"fmt"

	apperrors "github.com/visgraphio/visgraph/pkg/errors"
)

var (
	// ErrNotBipartite matches any [BipartiteError] via errors.Is. The
	// bipartite strategy fails with it when the graph is not 2-colorable;
	// it never silently falls back to another layout.
	ErrNotBipartite = errors.New("bipartite layout: graph is not 2-colorable")

	// ErrCyclicGraph matches any [CycleError] via errors.Is. The
	// hierarchical strategy requires a DAG and fails with it rather than
	// guessing a layering.
	ErrCyclicGraph = errors.New("hierarchical layout: graph contains a cycle")
)

// BipartiteError reports the edge whose endpoints cannot receive distinct
// colors, proving an odd cycle.
type BipartiteError struct {
	From, To string
}

func (e *BipartiteError) Error() string {
	return fmt.Sprintf("bipartite layout: graph is not 2-colorable: conflicting edge %q -> %q", e.From, e.To)
}

// Is lets errors.Is(err, ErrNotBipartite) match.
func (e *BipartiteError) Is(target error) bool { return target == ErrNotBipartite }

// Unwrap exposes the coded error so apperrors.GetCode reports
// LAYOUT_NOT_BIPARTITE for API and CLI error handling.
func (e *BipartiteError) Unwrap() error {
	return apperrors.New(apperrors.ErrCodeNotBipartite, "graph is not 2-colorable")
}

// CycleError reports a back edge found while checking the hierarchical
// layout's acyclicity precondition.
type CycleError struct {
	From, To string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("hierarchical layout: graph contains a cycle: back edge %q -> %q", e.From, e.To)
}

// Is lets errors.Is(err, ErrCyclicGraph) match.
func (e *CycleError) Is(target error) bool { return target == ErrCyclicGraph }

// Unwrap exposes the coded error so apperrors.GetCode reports
// LAYOUT_GRAPH_CYCLE for API and CLI error handling.
func (e *CycleError) Unwrap() error {
	return apperrors.New(apperrors.ErrCodeGraphCycle, "graph contains a cycle")
}
