package analyzer

import (
	"fmt"

	"github.com/rmoreira/carteira/internal/models"
)

// Tier thresholds on normalized HHI. Boundary values belong to the
// higher-concentration tier. Fixed policy constants, not derived.
const (
	thresholdHighlyConcentrated     = 0.8
	thresholdModeratelyConcentrated = 0.5
	thresholdModeratelyDiversified  = 0.2
)

// Classify maps a normalized HHI value to its diversification tier.
// Values outside [0, 1] indicate a metrics bug and are rejected rather
// than clamped.
func Classify(normalizedHHI float64) (models.DiversificationLevel, error) {
	if normalizedHHI < 0 || normalizedHHI > 1 {
		return "", fmt.Errorf("normalized HHI %v: %w", normalizedHHI, models.ErrInvalidMetric)
	}

	switch {
	case normalizedHHI >= thresholdHighlyConcentrated:
		return models.LevelHighlyConcentrated, nil
	case normalizedHHI >= thresholdModeratelyConcentrated:
		return models.LevelModeratelyConcentrated, nil
	case normalizedHHI >= thresholdModeratelyDiversified:
		return models.LevelModeratelyDiversified, nil
	default:
		return models.LevelWellDiversified, nil
	}
}

// TierMarker returns the traffic-light indicator shown next to the
// normalized HHI in the UI, keyed to the same thresholds as Classify.
func TierMarker(normalizedHHI float64) string {
	switch {
	case normalizedHHI >= thresholdHighlyConcentrated:
		return "🔴"
	case normalizedHHI >= thresholdModeratelyConcentrated:
		return "🟠"
	case normalizedHHI >= thresholdModeratelyDiversified:
		return "🟡"
	default:
		return "🟢"
	}
}
