// Package interfaces defines service contracts for Carteira
package interfaces

import (
	"context"

	"github.com/rmoreira/carteira/internal/models"
)

// ExtractorService turns a statement document into a typed holdings list.
type ExtractorService interface {
	// ExtractHoldings parses the document at path and returns one Holding
	// per distinct holding name, values aggregated. Returns
	// models.ErrDocumentNotFound if the file is missing or unreadable, and
	// models.ErrEmptyPortfolio if no holdings can be parsed from it.
	ExtractHoldings(ctx context.Context, path string) ([]models.Holding, error)
}

// AnalyzerService runs the diversification analysis pipeline.
type AnalyzerService interface {
	// Analyze computes metrics, classifies the diversification tier, and
	// attaches commentary for the given holdings. Metric and classification
	// failures propagate unchanged; commentary degrades to the deterministic
	// fallback instead of failing.
	Analyze(ctx context.Context, holdings []models.Holding) (*models.PortfolioAnalysis, error)

	// AnalyzeDocument extracts holdings from the document at path and runs
	// Analyze on the result.
	AnalyzeDocument(ctx context.Context, path string) (*models.PortfolioAnalysis, error)
}

// CommentaryService produces free-text commentary for computed metrics.
// Implementations may call out to a remote model; callers must treat any
// error as non-fatal and substitute the fallback commentary.
type CommentaryService interface {
	GenerateCommentary(ctx context.Context, metrics *models.PortfolioMetrics, level models.DiversificationLevel) (string, error)
}
