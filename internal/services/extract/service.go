// Package extract parses brokerage statement PDFs into typed holdings.
package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/interfaces"
	"github.com/rmoreira/carteira/internal/models"
)

// maxTextSize caps extracted statement text. Position statements are a few
// pages; anything past this is boilerplate.
const maxTextSize = 200_000

// Service extracts holdings from B3-style position statement PDFs.
type Service struct {
	logger *common.Logger
}

// NewService creates a new extraction service.
func NewService(logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{logger: logger}
}

// ExtractHoldings parses the statement at path into a holdings list, one
// entry per distinct holding name with values aggregated.
func (s *Service) ExtractHoldings(ctx context.Context, path string) ([]models.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := extractPDFText(path)
	if err != nil {
		return nil, err
	}

	holdings := ParseStatement(text)
	if len(holdings) == 0 {
		return nil, fmt.Errorf("no holdings parsed from %s: %w", path, models.ErrEmptyPortfolio)
	}

	s.logger.Debug().
		Str("path", path).
		Int("holdings", len(holdings)).
		Msg("Extracted holdings from statement")

	return holdings, nil
}

// extractPDFText extracts page-ordered plain text from a PDF file.
func extractPDFText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%s: %w", path, models.ErrDocumentNotFound)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, models.ErrDocumentNotFound)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")

		if sb.Len() > maxTextSize {
			break
		}
	}

	result := sb.String()
	if len(result) > maxTextSize {
		result = result[:maxTextSize]
	}

	return result, nil
}

// Ensure Service implements ExtractorService
var _ interfaces.ExtractorService = (*Service)(nil)
