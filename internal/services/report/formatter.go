// Package report renders portfolio analyses for download.
package report

import (
	"fmt"
	"strings"

	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/models"
)

const reportRule = "=========================================="

// FormatAnalysisReport renders a plain-text analysis report suitable for
// a reader with no access to the tool.
func FormatAnalysisReport(analysis *models.PortfolioAnalysis) string {
	var sb strings.Builder

	sb.WriteString("PORTFOLIO DIVERSIFICATION ANALYSIS REPORT\n")
	sb.WriteString(reportRule + "\n\n")
	sb.WriteString("Generated by Portfolio Diversification Analyzer\n")
	sb.WriteString(fmt.Sprintf("Date: %s\n\n", analysis.GeneratedAt.Format("2006-01-02 15:04")))

	sb.WriteString("PORTFOLIO SUMMARY\n")
	sb.WriteString("-----------------\n")
	sb.WriteString(fmt.Sprintf("Total Value: R$ %s\n", common.FormatMoney(analysis.TotalValue)))
	sb.WriteString(fmt.Sprintf("Number of Holdings: %d\n\n", analysis.NumHoldings))

	sb.WriteString("HOLDINGS\n")
	sb.WriteString("--------\n")
	for _, h := range analysis.Holdings {
		sb.WriteString(fmt.Sprintf("- %s: R$ %s (%s)\n", h.Name, common.FormatMoney(h.Value), common.FormatPct(h.Weight)))
	}
	sb.WriteString("\n")

	sb.WriteString("DIVERSIFICATION METRICS\n")
	sb.WriteString("-----------------------\n")
	sb.WriteString(fmt.Sprintf("HHI Index: %.4f\n", analysis.HHI))
	sb.WriteString(fmt.Sprintf("Normalized HHI: %.4f\n", analysis.NormalizedHHI))
	sb.WriteString(fmt.Sprintf("Diversification Level: %s\n\n", analysis.DiversificationLevel))

	sb.WriteString("UNDERSTANDING YOUR METRICS\n")
	sb.WriteString("--------------------------\n")
	sb.WriteString(formatMetricsExplanation(analysis))
	sb.WriteString("\n")

	switch analysis.CommentarySource {
	case models.CommentarySourceModel:
		sb.WriteString("AI ANALYSIS & RECOMMENDATIONS\n")
	default:
		sb.WriteString("ANALYSIS & RECOMMENDATIONS (auto-generated)\n")
	}
	sb.WriteString("------------------------------\n")
	sb.WriteString(analysis.Commentary)
	sb.WriteString("\n\n")

	sb.WriteString(reportRule + "\n")
	sb.WriteString("Note: This analysis is for informational purposes only and should not be considered\n")
	sb.WriteString("financial advice. Please consult with a qualified financial advisor for personalized\n")
	sb.WriteString("investment guidance.\n")

	return sb.String()
}

// formatMetricsExplanation explains the figures in the report in plain
// language, mirroring the in-app help text.
func formatMetricsExplanation(analysis *models.PortfolioAnalysis) string {
	return fmt.Sprintf(`HHI (Herfindahl-Hirschman Index): %.4f
- Calculated as the sum of squared weights of each investment
- Ranges from 1/n (perfect diversification) to 1 (complete concentration)
- Lower values indicate better diversification

Normalized HHI: %.4f
- Scaled version of HHI ranging from 0 to 1
- 0 = Perfect diversification (all investments equally weighted)
- 1 = Complete concentration (all money in one investment)
- Your portfolio: %s

Number of Holdings: %d
- Total number of different investments in your portfolio
- More holdings doesn't always mean better diversification
- What matters is how the value is distributed across holdings
`,
		analysis.HHI, analysis.NormalizedHHI, analysis.DiversificationLevel, analysis.NumHoldings)
}

// ReportFilename derives the download filename from the uploaded
// statement name, e.g. "posicao-2025-10-06.pdf" ->
// "portfolio_analysis_posicao-2025-10-06.txt".
func ReportFilename(uploadName string) string {
	base := strings.TrimSuffix(uploadName, ".pdf")
	base = strings.TrimSuffix(base, ".PDF")
	if base == "" {
		base = "portfolio"
	}
	return fmt.Sprintf("portfolio_analysis_%s.txt", base)
}
