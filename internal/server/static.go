package server

import (
	"embed"
	"net/http"
)

//go:embed web
var webFS embed.FS

// handleIndex serves the single-page upload UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "UI asset missing")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}
