package server

import "net/http"

// registerRoutes sets up all routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Analysis
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/analyze/report", s.handleAnalyzeReport)
	mux.HandleFunc("/api/analyze/chart", s.handleAnalyzeChart)

	// Web UI
	mux.HandleFunc("/", s.handleIndex)
}
