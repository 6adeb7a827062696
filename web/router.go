// Package web serves the export forms over HTTP.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilovelez/wptv-sessions-list/core/export"
	"github.com/nilovelez/wptv-sessions-list/core/render"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(svc *export.Service, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	exportH := NewExportHandler(svc, logger)

	r.Get("/health", Health)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/"+render.FormatWPTV, http.StatusFound)
	})
	r.Get("/{format}", exportH.Show)
	r.Post("/{format}", exportH.Submit)

	return r
}

// Health reports liveness. It never calls the upstream sites.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
