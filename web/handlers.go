package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilovelez/wptv-sessions-list/core"
	"github.com/nilovelez/wptv-sessions-list/core/export"
	"github.com/nilovelez/wptv-sessions-list/core/render"
	"github.com/nilovelez/wptv-sessions-list/core/siteurl"
	"github.com/nilovelez/wptv-sessions-list/core/wordcamp"
)

// ExportHandler renders one form page per export.
type ExportHandler struct {
	svc    *export.Service
	logger *slog.Logger
}

func NewExportHandler(svc *export.Service, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// Show renders the empty form.
func (h *ExportHandler) Show(w http.ResponseWriter, r *http.Request) {
	data, ok := h.page(w, r, "")
	if !ok {
		return
	}
	h.write(w, http.StatusOK, data)
}

// Submit runs the export and renders the form followed by its output.
func (h *ExportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode := core.OutputMode(r.PostFormValue("output_type"))

	data, ok := h.page(w, r, mode)
	if !ok {
		return
	}
	data.URL = r.PostFormValue("wordcamp_url")

	res, err := h.svc.Export(r.Context(), export.Request{
		SiteURL: data.URL,
		Format:  data.Format,
		Mode:    mode,
	})
	if err != nil {
		h.logger.Warn("export failed",
			"request_id", RequestIDFrom(r.Context()),
			"format", data.Format,
			"error", err,
		)
		data.Error = export.UserMessage(err)
		h.write(w, statusFor(err), data)
		return
	}

	data.URL = res.BaseURL
	data.Output = wrapOutput(res.Mode, res.Output)
	h.write(w, http.StatusOK, data)
}

// page prepares the form for the routed format. It answers 404 itself when
// the format is unknown. An empty mode selects the formatter default.
func (h *ExportHandler) page(w http.ResponseWriter, r *http.Request, mode core.OutputMode) (*pageData, bool) {
	format := chi.URLParam(r, "format")
	formatter, err := h.svc.Formatters().Get(format)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	modes := formatter.Modes()
	if mode == "" {
		mode = modes[0]
	}
	return &pageData{
		Title:       "Sessions list: " + format,
		Format:      format,
		Description: descriptions[format],
		Nav:         h.svc.Formatters().Names(),
		Modes:       modeOptions(modes, mode),
	}, true
}

func (h *ExportHandler) write(w http.ResponseWriter, status int, data *pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("rendering page", "format", data.Format, "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func statusFor(err error) int {
	var ce *wordcamp.CollectionError
	switch {
	case errors.Is(err, siteurl.ErrEmptyURL),
		errors.Is(err, render.ErrUnknownMode),
		errors.Is(err, render.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.As(err, &ce):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
