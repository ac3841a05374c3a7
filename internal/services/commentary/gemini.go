// Package commentary generates model-written diversification commentary.
package commentary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/interfaces"
	"github.com/rmoreira/carteira/internal/models"
)

// Service is the Gemini-backed commentary service. Callers treat its
// errors as non-fatal and substitute the deterministic fallback.
type Service struct {
	client interfaces.GeminiClient
	logger *common.Logger
}

// NewService creates a new commentary service.
func NewService(client interfaces.GeminiClient, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{client: client, logger: logger}
}

// commentaryResponse is the structured output contract for the model.
type commentaryResponse struct {
	Commentary string `json:"commentary"`
}

// GenerateCommentary requests free-text commentary for the computed
// metrics. Single-shot: transport errors, timeouts, and responses that
// cannot be decoded into the expected shape are returned as errors.
func (s *Service) GenerateCommentary(ctx context.Context, metrics *models.PortfolioMetrics, level models.DiversificationLevel) (string, error) {
	prompt := buildCommentaryPrompt(metrics, level)

	response, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("commentary generation failed: %w", err)
	}

	text, err := parseCommentaryResponse(response)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Malformed commentary response")
		return "", err
	}

	return text, nil
}

// buildCommentaryPrompt creates the analysis prompt from the metrics and
// the precomputed tier. The model writes prose; the numbers are ours.
func buildCommentaryPrompt(metrics *models.PortfolioMetrics, level models.DiversificationLevel) string {
	var sb strings.Builder

	sb.WriteString(`You are a financial portfolio analyst specializing in diversification analysis.

Your task is to analyze investment portfolios using the Herfindahl-Hirschman Index (HHI) and provide clear, actionable insights about portfolio diversification.

Normalized HHI ranges from 0 (perfect diversification) to 1 (complete concentration).

Provide practical, friendly advice on portfolio diversification. Be specific about numbers and provide actionable recommendations.

`)

	sb.WriteString("## Portfolio Metrics\n\n")
	sb.WriteString(fmt.Sprintf("- Total Portfolio Value: $%s\n", common.FormatMoney(metrics.TotalValue)))
	sb.WriteString(fmt.Sprintf("- Number of Holdings: %d\n", metrics.NumHoldings))
	sb.WriteString(fmt.Sprintf("- HHI (Herfindahl-Hirschman Index): %.4f\n", metrics.HHI))
	sb.WriteString(fmt.Sprintf("- Normalized HHI: %.4f\n", metrics.NormalizedHHI))
	sb.WriteString(fmt.Sprintf("- Diversification Level: %s\n\n", level))

	sb.WriteString("## Holdings\n\n")
	for _, h := range metrics.Holdings {
		sb.WriteString(fmt.Sprintf("- %s: $%s (%s)\n", h.Name, common.FormatMoney(h.Value), common.FormatPct(h.Weight)))
	}

	sb.WriteString(`
Respond with a JSON object containing a single "commentary" field holding your full analysis as markdown text. Do not wrap the JSON in code fences or any other text.`)

	return sb.String()
}

// parseCommentaryResponse decodes the model response into the expected
// shape. Code fences are stripped and common JSON defects repaired before
// a strict decode; a missing or empty commentary field is malformed
// output, not coerced.
func parseCommentaryResponse(response string) (string, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	if response == "" {
		return "", fmt.Errorf("empty commentary response")
	}

	var data commentaryResponse
	if err := json.Unmarshal([]byte(response), &data); err != nil {
		repaired, repairErr := jsonrepair.RepairJSON(response)
		if repairErr != nil {
			return "", fmt.Errorf("commentary response is not valid JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &data); err != nil {
			return "", fmt.Errorf("commentary response is not valid JSON after repair: %w", err)
		}
	}

	if strings.TrimSpace(data.Commentary) == "" {
		return "", fmt.Errorf("commentary response missing commentary field")
	}

	return data.Commentary, nil
}

// Ensure Service implements CommentaryService
var _ interfaces.CommentaryService = (*Service)(nil)
