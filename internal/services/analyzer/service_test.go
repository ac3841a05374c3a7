package analyzer

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rmoreira/carteira/internal/models"
)

type stubCommentary struct {
	text  string
	err   error
	calls int
}

func (s *stubCommentary) GenerateCommentary(_ context.Context, _ *models.PortfolioMetrics, _ models.DiversificationLevel) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubExtractor struct {
	holdings []models.Holding
	err      error
	lastPath string
}

func (s *stubExtractor) ExtractHoldings(_ context.Context, path string) ([]models.Holding, error) {
	s.lastPath = path
	return s.holdings, s.err
}

var scenarioHoldings = []models.Holding{
	{Name: "PETR4", Value: 6000},
	{Name: "VALE3", Value: 3000},
	{Name: "ITUB4", Value: 1000},
}

func TestAnalyze_ModelCommentary(t *testing.T) {
	commentary := &stubCommentary{text: "Solid spread across your three positions."}
	svc := NewService(nil, commentary, nil)

	analysis, err := svc.Analyze(context.Background(), scenarioHoldings)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if commentary.calls != 1 {
		t.Errorf("commentary called %d times, want exactly 1", commentary.calls)
	}
	if analysis.CommentarySource != models.CommentarySourceModel {
		t.Errorf("CommentarySource = %q, want %q", analysis.CommentarySource, models.CommentarySourceModel)
	}
	if analysis.Commentary != commentary.text {
		t.Errorf("Commentary = %q, want model text", analysis.Commentary)
	}

	if analysis.HHI != 0.46 {
		t.Errorf("HHI = %v, want 0.46", analysis.HHI)
	}
	if analysis.NormalizedHHI != 0.19 {
		t.Errorf("NormalizedHHI = %v, want 0.19 (rounded to 4 decimals)", analysis.NormalizedHHI)
	}
	if analysis.DiversificationLevel != models.LevelWellDiversified {
		t.Errorf("DiversificationLevel = %q, want %q", analysis.DiversificationLevel, models.LevelWellDiversified)
	}
	if analysis.Marker != "🟢" {
		t.Errorf("Marker = %q, want 🟢", analysis.Marker)
	}
	if analysis.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestAnalyze_FallbackOnCommentaryError(t *testing.T) {
	commentary := &stubCommentary{err: errors.New("model unavailable")}
	svc := NewService(nil, commentary, nil)

	analysis, err := svc.Analyze(context.Background(), scenarioHoldings)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if commentary.calls != 1 {
		t.Errorf("commentary called %d times, want exactly 1 (no retries)", commentary.calls)
	}
	if analysis.CommentarySource != models.CommentarySourceFallback {
		t.Errorf("CommentarySource = %q, want %q", analysis.CommentarySource, models.CommentarySourceFallback)
	}
	if !strings.Contains(analysis.Commentary, "Your portfolio, comprising 3 investments") {
		t.Errorf("fallback commentary not used: %q", analysis.Commentary)
	}
}

func TestAnalyze_FallbackOnEmptyCommentary(t *testing.T) {
	commentary := &stubCommentary{text: "   \n"}
	svc := NewService(nil, commentary, nil)

	analysis, err := svc.Analyze(context.Background(), scenarioHoldings)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if analysis.CommentarySource != models.CommentarySourceFallback {
		t.Errorf("CommentarySource = %q, want fallback on blank text", analysis.CommentarySource)
	}
}

func TestAnalyze_NilCommentaryService(t *testing.T) {
	svc := NewService(nil, nil, nil)

	analysis, err := svc.Analyze(context.Background(), scenarioHoldings)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if analysis.CommentarySource != models.CommentarySourceFallback {
		t.Errorf("CommentarySource = %q, want fallback when no commentary service", analysis.CommentarySource)
	}
}

func TestAnalyze_MetricErrorsPropagate(t *testing.T) {
	svc := NewService(nil, &stubCommentary{}, nil)

	_, err := svc.Analyze(context.Background(), nil)
	if !errors.Is(err, models.ErrEmptyPortfolio) {
		t.Errorf("empty holdings error = %v, want ErrEmptyPortfolio", err)
	}

	_, err = svc.Analyze(context.Background(), []models.Holding{{Name: "A", Value: 0}})
	if !errors.Is(err, models.ErrInvalidPortfolioValue) {
		t.Errorf("zero total error = %v, want ErrInvalidPortfolioValue", err)
	}
}

func TestAnalyze_RoundsAtPresentationOnly(t *testing.T) {
	// Two holdings 1/3 and 2/3: hhi = 1/9 + 4/9 = 0.555..., rounds to 0.5556.
	svc := NewService(nil, nil, nil)
	analysis, err := svc.Analyze(context.Background(), []models.Holding{
		{Name: "A", Value: 100},
		{Name: "B", Value: 200},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if math.Abs(analysis.HHI-0.5556) > 1e-12 {
		t.Errorf("HHI = %v, want 0.5556", analysis.HHI)
	}
	if math.Abs(analysis.NormalizedHHI-0.1111) > 1e-12 {
		t.Errorf("NormalizedHHI = %v, want 0.1111", analysis.NormalizedHHI)
	}
}

func TestAnalyzeDocument(t *testing.T) {
	extractor := &stubExtractor{holdings: scenarioHoldings}
	svc := NewService(extractor, nil, nil)

	analysis, err := svc.AnalyzeDocument(context.Background(), "/tmp/statement.pdf")
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}
	if extractor.lastPath != "/tmp/statement.pdf" {
		t.Errorf("extractor received path %q", extractor.lastPath)
	}
	if analysis.NumHoldings != 3 {
		t.Errorf("NumHoldings = %d, want 3", analysis.NumHoldings)
	}
}

func TestAnalyzeDocument_ExtractionErrorPropagates(t *testing.T) {
	extractor := &stubExtractor{err: models.ErrDocumentNotFound}
	svc := NewService(extractor, nil, nil)

	_, err := svc.AnalyzeDocument(context.Background(), "/tmp/missing.pdf")
	if !errors.Is(err, models.ErrDocumentNotFound) {
		t.Errorf("error = %v, want ErrDocumentNotFound", err)
	}
}
