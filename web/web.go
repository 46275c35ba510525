// Package web serves the embedded single-page dashboard.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/EdwinMichaelLab/epic-dashboard/httpx"
)

//go:embed index.html
var content embed.FS

// Handler renders the dashboard page with the resolved tile configuration
// baked in.
type Handler struct {
	tmpl *template.Template
	page pageData
}

type pageData struct {
	MapboxToken string
}

// NewHandler parses the embedded page template. An empty token selects the
// token-free OpenStreetMap tile fallback on the page.
func NewHandler(mapboxToken string) (*Handler, error) {
	tmpl, err := template.ParseFS(content, "index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl, page: pageData{MapboxToken: mapboxToken}}, nil
}

// Index serves the dashboard page.
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, h.page); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to render page")
	}
}
