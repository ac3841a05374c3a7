package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmoreira/carteira/internal/common"
	"github.com/rmoreira/carteira/internal/models"
)

// Tier-specific guidance appended to the fallback commentary. Selected
// by normalized HHI: < 0.2, < 0.5, else.
const (
	adviceWellDiversified = `1. **Maintain Your Diversification Strategy:** Your portfolio shows excellent diversification. Continue your current approach.
2. **Regular Monitoring:** Periodically review your portfolio to ensure it remains aligned with your goals.
3. **Consider Sectoral Diversification:** Ensure your investments span different sectors and asset classes.`

	adviceModerate = `1. **Consider Rebalancing:** Your portfolio shows moderate concentration. Consider redistributing from larger holdings to smaller positions.
2. **Add New Positions:** Consider adding new, uncorrelated investments to improve diversification.
3. **Monitor Large Holdings:** Keep an eye on your largest positions to prevent excessive concentration.`

	advicePoor = `1. **Urgent Rebalancing Needed:** Your portfolio is highly concentrated. Consider significantly reducing your largest positions.
2. **Diversify Immediately:** Add multiple new investments across different sectors and asset classes.
3. **Risk Management:** High concentration increases risk. Prioritize diversification to protect your portfolio.`
)

// GenerateFallbackCommentary produces the deterministic commentary used
// when the model commentary service is unavailable or returns malformed
// output. Given the same metrics it always produces the same text.
func GenerateFallbackCommentary(metrics *models.PortfolioMetrics, level models.DiversificationLevel) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Your portfolio, comprising %d investments with a total value of $%s, has been analyzed for diversification.\n\n",
		metrics.NumHoldings, common.FormatMoney(metrics.TotalValue)))

	sb.WriteString(fmt.Sprintf(
		"Based on the HHI of %.4f, your portfolio is classified as **%s**. The Normalized HHI of %.4f provides additional context about your diversification relative to the number of holdings.\n\n",
		metrics.HHI, level, metrics.NormalizedHHI))

	sb.WriteString("**Top Holdings:**\n")
	for _, h := range TopHoldings(metrics.Holdings, 3) {
		sb.WriteString(fmt.Sprintf("- %s: $%s (%s)\n", h.Name, common.FormatMoney(h.Value), common.FormatPct(h.Weight)))
	}

	sb.WriteString("\n**Recommendations:**\n")
	switch {
	case metrics.NormalizedHHI < thresholdModeratelyDiversified:
		sb.WriteString(adviceWellDiversified)
	case metrics.NormalizedHHI < thresholdModeratelyConcentrated:
		sb.WriteString(adviceModerate)
	default:
		sb.WriteString(advicePoor)
	}

	return sb.String()
}

// TopHoldings returns the k largest holdings by value, without mutating
// the input slice. Ties keep input order.
func TopHoldings(holdings []models.WeightedHolding, k int) []models.WeightedHolding {
	sorted := make([]models.WeightedHolding, len(holdings))
	copy(sorted, holdings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}
