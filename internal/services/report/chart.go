package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rmoreira/carteira/internal/models"
	"github.com/rmoreira/carteira/internal/services/analyzer"
)

// Bars beyond this many holdings become unreadable; the tail is grouped
// into a single "Others" bar.
const maxChartBars = 10

// RenderWeightsChart renders a PNG bar chart of holding weights, largest
// first. Returns raw PNG bytes.
func RenderWeightsChart(analysis *models.PortfolioAnalysis) ([]byte, error) {
	if len(analysis.Holdings) == 0 {
		return nil, fmt.Errorf("no holdings to chart")
	}

	sorted := analyzer.TopHoldings(analysis.Holdings, len(analysis.Holdings))

	var bars []chart.Value
	othersWeight := 0.0
	for i, h := range sorted {
		if i < maxChartBars {
			bars = append(bars, chart.Value{
				Label: h.Name,
				Value: h.Weight * 100,
			})
			continue
		}
		othersWeight += h.Weight
	}
	if othersWeight > 0 {
		bars = append(bars, chart.Value{
			Label: "Others",
			Value: othersWeight * 100,
		})
	}

	graph := chart.BarChart{
		Title:    "Portfolio Weights",
		Width:    900,
		Height:   400,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 30,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	for i := range graph.Bars {
		graph.Bars[i].Style = chart.Style{
			FillColor:   drawing.ColorFromHex("2563eb"), // blue-600
			StrokeColor: drawing.ColorFromHex("1e40af"),
			StrokeWidth: 1,
		}
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
