// Package server provides the HTTP API for the render service.
//
// The API exposes the layout → export pipeline over JSON:
//
//	POST /v1/render        compute a layout and export artifacts
//	POST /v1/renders       same, but persist the result as a render record
//	GET  /v1/renders       list persisted render records
//	GET  /v1/renders/{id}  fetch one record (metadata or raw artifact)
//	GET  /v1/strategies    list available layout strategies
//	GET  /v1/healthz       liveness probe
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/visgraphio/visgraph/pkg/pipeline"
	"github.com/visgraphio/visgraph/pkg/store"
)

// Handler bundles the dependencies of the HTTP API.
type Handler struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a handler. A nil store disables the persistence endpoints
// gracefully (they respond 503); a nil logger falls back to the default.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		runner: runner,
		store:  st,
		logger: logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(h.withRequestID)
	r.Use(h.withLogging)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", h.Healthz)
		r.Get("/strategies", h.Strategies)
		r.Post("/render", h.Render)

		r.Route("/renders", func(r chi.Router) {
			r.Post("/", h.CreateRender)
			r.Get("/", h.ListRenders)
			r.Get("/{id}", h.GetRender)
			r.Delete("/{id}", h.DeleteRender)
		})
	})
	return r
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
