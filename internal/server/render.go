package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/visgraphio/visgraph/pkg/errors"
	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/layout"
	"github.com/visgraphio/visgraph/pkg/pipeline"
	"github.com/visgraphio/visgraph/pkg/store"
)

// renderRequest is the JSON body for POST /v1/render and POST /v1/renders.
type renderRequest struct {
	Graph    graphDocument `json:"graph"`
	Strategy string        `json:"strategy,omitempty"`
	Settings *settingsDoc  `json:"settings,omitempty"`
	Formats  []string      `json:"formats,omitempty"`
	Refresh  bool          `json:"refresh,omitempty"`
}

// graphDocument mirrors the node-link format used by graph.Read.
type graphDocument struct {
	Nodes []string     `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// settingsDoc wraps layout.Settings so an absent settings object falls back
// to defaults instead of the zero value.
type settingsDoc struct {
	layout.Settings
}

// renderResponse is the JSON body for POST /v1/render.
type renderResponse struct {
	GraphHash string                `json:"graph_hash"`
	Strategy  string                `json:"strategy"`
	Positions layout.PositionMap    `json:"positions"`
	Artifacts map[string][]byte     `json:"artifacts"`
	Stats     renderStats           `json:"stats"`
	CacheInfo pipeline.CacheInfo    `json:"cache_info"`
	Records   []*store.RenderRecord `json:"records,omitempty"`
}

type renderStats struct {
	NodeCount  int    `json:"node_count"`
	EdgeCount  int    `json:"edge_count"`
	LayoutTime string `json:"layout_time"`
	ExportTime string `json:"export_time"`
}

// Render computes a layout and exports artifacts without persisting anything.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	g, opts, ok := h.decodeRenderRequest(w, r)
	if !ok {
		return
	}

	result, err := h.runner.Execute(r.Context(), g, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRenderResponse(opts, result, nil))
}

// CreateRender runs the pipeline and persists one record per artifact.
func (h *Handler) CreateRender(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured", nil)
		return
	}

	g, opts, ok := h.decodeRenderRequest(w, r)
	if !ok {
		return
	}

	result, err := h.runner.Execute(r.Context(), g, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	records := make([]*store.RenderRecord, 0, len(result.Artifacts))
	for _, format := range opts.Formats {
		rec := store.NewRecord(result.GraphHash, opts.Strategy, format,
			pipeline.ContentTypes[format], result.Artifacts[format])
		if err := h.store.Save(r.Context(), rec); err != nil {
			writeServiceError(w, err)
			return
		}
		records = append(records, rec)
	}

	writeJSON(w, http.StatusCreated, newRenderResponse(opts, result, records))
}

// ListRenders returns persisted records, newest first. Artifact bytes are
// omitted from listings; fetch a single record to retrieve them.
func (h *Handler) ListRenders(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured", nil)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	records, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	for _, rec := range records {
		rec.Artifact = nil
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"renders": records,
		"count":   len(records),
	})
}

// GetRender returns one record. With ?raw=true the artifact bytes are served
// directly under the record's content type.
func (h *Handler) GetRender(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured", nil)
		return
	}

	id := chi.URLParam(r, "id")
	rec, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "render not found", nil)
		return
	}

	if r.URL.Query().Get("raw") == "true" {
		w.Header().Set("Content-Type", rec.ContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(rec.Artifact)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteRender removes a record. Deleting an unknown ID is a no-op.
func (h *Handler) DeleteRender(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Strategies lists the available layout strategies.
func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"strategies": layout.Strategies(),
		"default":    pipeline.DefaultStrategy,
	})
}

// decodeRenderRequest parses and validates the request body. On failure it
// writes the error response and returns ok=false.
func (h *Handler) decodeRenderRequest(w http.ResponseWriter, r *http.Request) (*graph.Graph, pipeline.Options, bool) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return nil, pipeline.Options{}, false
	}

	g := graph.New()
	for _, id := range req.Graph.Nodes {
		if err := g.AddNode(id); err != nil {
			writeError(w, http.StatusBadRequest, "invalid graph: node "+strconv.Quote(id), err)
			return nil, pipeline.Options{}, false
		}
	}
	for _, e := range req.Graph.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			writeError(w, http.StatusBadRequest, "invalid graph: edge "+strconv.Quote(e.From)+" -> "+strconv.Quote(e.To), err)
			return nil, pipeline.Options{}, false
		}
	}

	opts := pipeline.Options{
		Strategy: req.Strategy,
		Formats:  req.Formats,
		Refresh:  req.Refresh,
		Logger:   h.logger,
	}
	if req.Settings != nil {
		opts.Settings = req.Settings.Settings
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeServiceError(w, err)
		return nil, pipeline.Options{}, false
	}
	return g, opts, true
}

func newRenderResponse(opts pipeline.Options, result *pipeline.Result, records []*store.RenderRecord) renderResponse {
	return renderResponse{
		GraphHash: result.GraphHash,
		Strategy:  opts.Strategy,
		Positions: result.Positions,
		Artifacts: result.Artifacts,
		Stats: renderStats{
			NodeCount:  result.Stats.NodeCount,
			EdgeCount:  result.Stats.EdgeCount,
			LayoutTime: result.Stats.LayoutTime.Round(time.Microsecond).String(),
			ExportTime: result.Stats.ExportTime.Round(time.Microsecond).String(),
		},
		CacheInfo: result.CacheInfo,
		Records:   records,
	}
}

// writeServiceError maps pipeline and storage error codes to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSettings,
		errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidStrategy,
		errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotBipartite, errors.ErrCodeGraphCycle:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeRenderNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}
	writeError(w, status, errors.UserMessage(err), err)
}
