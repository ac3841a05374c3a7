package common

import (
	"fmt"
	"strings"
)

// FormatMoney formats a monetary amount with thousands separators and two
// decimal places, e.g. 10000 -> "10,000.00".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sb.WriteByte('.')
	sb.WriteString(fracPart)

	return sb.String()
}

// FormatPct formats a weight fraction (0..1) as a percentage with one
// decimal place, e.g. 0.256 -> "25.6%".
func FormatPct(weight float64) string {
	return fmt.Sprintf("%.1f%%", weight*100)
}
