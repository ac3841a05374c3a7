package analyzer

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/interfaces"
	"github.com/rmoreira/carteira/internal/models"
)

// Service assembles the full portfolio analysis: metrics, tier,
// commentary. It holds no state across calls and is safe for concurrent
// use on independent portfolios.
type Service struct {
	extractor  interfaces.ExtractorService
	commentary interfaces.CommentaryService
	logger     *common.Logger
}

// NewService creates a new analyzer service. commentary may be nil, in
// which case every analysis uses the deterministic fallback commentary.
func NewService(extractor interfaces.ExtractorService, commentary interfaces.CommentaryService, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		extractor:  extractor,
		commentary: commentary,
		logger:     logger,
	}
}

// Analyze computes metrics and tier for the holdings, then attaches
// commentary. Metric and classification errors propagate unchanged; the
// commentary call is single-shot and degrades to the fallback on any
// failure or malformed output.
func (s *Service) Analyze(ctx context.Context, holdings []models.Holding) (*models.PortfolioAnalysis, error) {
	metrics, err := ComputeMetrics(holdings)
	if err != nil {
		return nil, err
	}

	level, err := Classify(metrics.NormalizedHHI)
	if err != nil {
		s.logger.Error().
			Float64("normalized_hhi", metrics.NormalizedHHI).
			Err(err).
			Msg("Computed metric outside valid range")
		return nil, err
	}

	commentary, source := s.resolveCommentary(ctx, metrics, level)

	return &models.PortfolioAnalysis{
		TotalValue:           metrics.TotalValue,
		NumHoldings:          metrics.NumHoldings,
		HHI:                  round4(metrics.HHI),
		NormalizedHHI:        round4(metrics.NormalizedHHI),
		DiversificationLevel: level,
		Marker:               TierMarker(metrics.NormalizedHHI),
		Commentary:           commentary,
		CommentarySource:     source,
		Holdings:             metrics.Holdings,
		GeneratedAt:          time.Now(),
	}, nil
}

// AnalyzeDocument extracts holdings from the statement at path and runs
// the analysis pipeline on them.
func (s *Service) AnalyzeDocument(ctx context.Context, path string) (*models.PortfolioAnalysis, error) {
	holdings, err := s.extractor.ExtractHoldings(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, holdings)
}

// resolveCommentary attempts the model commentary service once and falls
// back to the deterministic generator on any failure or empty result.
func (s *Service) resolveCommentary(ctx context.Context, metrics *models.PortfolioMetrics, level models.DiversificationLevel) (string, string) {
	if s.commentary != nil {
		text, err := s.commentary.GenerateCommentary(ctx, metrics, level)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, models.CommentarySourceModel
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Commentary service failed, using fallback")
		}
	}

	return GenerateFallbackCommentary(metrics, level), models.CommentarySourceFallback
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Ensure Service implements AnalyzerService
var _ interfaces.AnalyzerService = (*Service)(nil)
