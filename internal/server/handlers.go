package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/models"
	"github.com/rmoreira/carteira/internal/services/report"
)

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// --- Analysis handlers ---

// handleAnalyze handles POST /api/analyze: accepts a multipart PDF upload
// and returns the assembled analysis as JSON.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	analysis, _, ok := s.analyzeUpload(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, analysis)
}

// handleAnalyzeReport handles POST /api/analyze/report: runs the same
// pipeline and returns the plain-text report as a download.
func (s *Server) handleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	analysis, uploadName, ok := s.analyzeUpload(w, r)
	if !ok {
		return
	}

	text := report.FormatAnalysisReport(analysis)
	filename := report.ReportFilename(uploadName)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text)
}

// handleAnalyzeChart handles POST /api/analyze/chart: runs the same
// pipeline and returns a PNG weights chart.
func (s *Server) handleAnalyzeChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	analysis, _, ok := s.analyzeUpload(w, r)
	if !ok {
		return
	}

	png, err := report.RenderWeightsChart(analysis)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Chart render failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// analyzeUpload reads the uploaded statement, runs the analysis pipeline,
// and maps pipeline errors to HTTP responses. The uploaded file lives in
// a temp file for the duration of the request only. Returns ok=false when
// a response has already been written.
func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) (*models.PortfolioAnalysis, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.app.Config.Upload.MaxSizeBytes())

	file, header, err := readStatementFile(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return nil, "", false
	}
	defer file.Close()

	tmpPath, err := s.saveTempStatement(file)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to save uploaded statement")
		WriteError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return nil, "", false
	}
	defer os.Remove(tmpPath)

	analysis, err := s.app.AnalyzerService.AnalyzeDocument(r.Context(), tmpPath)
	if err != nil {
		s.writeAnalysisError(w, err)
		return nil, "", false
	}

	return analysis, header.Filename, true
}

// readStatementFile pulls the PDF out of the multipart form. The field is
// named "statement"; only PDF uploads are accepted.
func readStatementFile(r *http.Request) (io.ReadCloser, *multipartHeader, error) {
	file, header, err := r.FormFile("statement")
	if err != nil {
		return nil, nil, fmt.Errorf("statement file is required (multipart field %q)", "statement")
	}

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pdf" {
		file.Close()
		return nil, nil, fmt.Errorf("unsupported file type %q: only PDF statements are accepted", ext)
	}

	return file, &multipartHeader{Filename: header.Filename, Size: header.Size}, nil
}

// multipartHeader carries the upload attributes the handlers care about.
type multipartHeader struct {
	Filename string
	Size     int64
}

// saveTempStatement writes the upload to a temp file and returns its path.
// The caller removes the file when the request completes.
func (s *Server) saveTempStatement(file io.Reader) (string, error) {
	tmp, err := os.CreateTemp(s.app.Config.Upload.TempDir, "carteira-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return tmp.Name(), nil
}

// writeAnalysisError maps the analysis error taxonomy to HTTP responses.
// Commentary failures never reach here; they degrade to the fallback
// inside the analyzer.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDocumentNotFound):
		WriteErrorWithCode(w, http.StatusBadRequest,
			"The uploaded file could not be read as a PDF statement", "document_not_found")
	case errors.Is(err, models.ErrEmptyPortfolio):
		WriteErrorWithCode(w, http.StatusUnprocessableEntity,
			"No holdings could be parsed from the statement; the PDF format may not be supported", "empty_portfolio")
	case errors.Is(err, models.ErrInvalidPortfolioValue):
		WriteErrorWithCode(w, http.StatusUnprocessableEntity,
			"The statement's total portfolio value is not positive", "invalid_portfolio_value")
	case errors.Is(err, models.ErrInvalidMetric):
		s.logger.Error().Err(err).Msg("Metric out of range during analysis")
		WriteErrorWithCode(w, http.StatusInternalServerError,
			"Internal metric computation error", "invalid_metric")
	default:
		s.logger.Error().Err(err).Msg("Analysis failed")
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", err))
	}
}
