// Package models defines data structures for Carteira
package models

import "time"

// Holding is one parsed line item from a brokerage statement.
// Extraction aggregates by name, so a portfolio holds at most one entry
// per distinct holding name. Immutable once created.
type Holding struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// WeightedHolding is a holding annotated with its portfolio weight
// (fraction of total value, 0..1).
type WeightedHolding struct {
	Holding
	Weight float64 `json:"weight"`
}

// PortfolioMetrics holds the concentration figures computed by the
// metrics engine. Values are unrounded; rounding happens once, at the
// presentation boundary.
type PortfolioMetrics struct {
	TotalValue    float64           `json:"total_value"`
	NumHoldings   int               `json:"num_holdings"`
	HHI           float64           `json:"hhi"`
	NormalizedHHI float64           `json:"normalized_hhi"`
	Holdings      []WeightedHolding `json:"holdings"`
}

// DiversificationLevel is the qualitative tier keyed to normalized HHI.
type DiversificationLevel string

const (
	LevelHighlyConcentrated     DiversificationLevel = "Highly Concentrated (Poor Diversification)"
	LevelModeratelyConcentrated DiversificationLevel = "Moderately Concentrated"
	LevelModeratelyDiversified  DiversificationLevel = "Moderately Diversified"
	LevelWellDiversified        DiversificationLevel = "Well Diversified"
)

// Commentary provenance values for PortfolioAnalysis.CommentarySource.
const (
	CommentarySourceModel    = "model"
	CommentarySourceFallback = "fallback"
)

// PortfolioAnalysis is the assembled result of one analysis run.
// HHI and NormalizedHHI are rounded to 4 decimal places; TotalValue is
// left at full precision. Constructed once, never mutated.
type PortfolioAnalysis struct {
	TotalValue           float64              `json:"total_value"`
	NumHoldings          int                  `json:"num_holdings"`
	HHI                  float64              `json:"hhi"`
	NormalizedHHI        float64              `json:"normalized_hhi"`
	DiversificationLevel DiversificationLevel `json:"diversification_level"`
	Marker               string               `json:"marker"` // traffic-light indicator for the UI
	Commentary           string               `json:"commentary"`
	CommentarySource     string               `json:"commentary_source"` // "model" or "fallback"
	Holdings             []WeightedHolding    `json:"holdings"`
	GeneratedAt          time.Time            `json:"generated_at"`
}
