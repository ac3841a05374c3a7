// Package analyzer computes portfolio diversification metrics and
// assembles the full analysis result.
package analyzer

import (
	"fmt"

	"github.com/rmoreira/carteira/internal/models"
)

// ComputeMetrics calculates the Herfindahl-Hirschman Index and its
// normalized variant for a holdings list.
//
//	hhi        = Σ w_i²           where w_i = value_i / total
//	normalized = (hhi - 1/n) / (1 - 1/n)   for n > 1
//
// A single holding is maximum concentration, so normalized HHI is 1.0 by
// convention at n == 1. Results are unrounded; rounding happens at the
// presentation boundary. Pure function, safe for concurrent use.
func ComputeMetrics(holdings []models.Holding) (*models.PortfolioMetrics, error) {
	n := len(holdings)
	if n == 0 {
		return nil, models.ErrEmptyPortfolio
	}

	totalValue := 0.0
	for _, h := range holdings {
		totalValue += h.Value
	}
	if totalValue <= 0 {
		return nil, fmt.Errorf("total value %.2f: %w", totalValue, models.ErrInvalidPortfolioValue)
	}

	weighted := make([]models.WeightedHolding, n)
	hhi := 0.0
	for i, h := range holdings {
		w := h.Value / totalValue
		weighted[i] = models.WeightedHolding{Holding: h, Weight: w}
		hhi += w * w
	}

	normalized := 1.0
	if n > 1 {
		inv := 1.0 / float64(n)
		normalized = (hhi - inv) / (1 - inv)
	}

	return &models.PortfolioMetrics{
		TotalValue:    totalValue,
		NumHoldings:   n,
		HHI:           hhi,
		NormalizedHHI: normalized,
		Holdings:      weighted,
	}, nil
}
