package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rmoreira/carteira/internal/models"
)

// B3 position statements list each product as a block ending with
// "Atualizado <name>" and a per-product "Total R$ <value>" line. Patterns
// compiled once.
var (
	namePattern  = regexp.MustCompile(`(?i)atualizado\s+(\S+)`)
	valuePattern = regexp.MustCompile(`(?i)Total\s+R\$\s*([\d.,]+)`)
	digitsOnly   = regexp.MustCompile(`\D`)
)

// ParseStatement scans statement text for holding names and their values
// and pairs them in document order. Names with no matching value line get
// a zero value. Duplicate names are aggregated into a single holding.
func ParseStatement(text string) []models.Holding {
	var names []string
	for _, m := range namePattern.FindAllStringSubmatch(text, -1) {
		names = append(names, strings.TrimSpace(m[1]))
	}

	var values []float64
	for _, m := range valuePattern.FindAllStringSubmatch(text, -1) {
		values = append(values, parseAmount(m[1]))
	}

	if len(names) == 0 {
		return nil
	}

	// Pair by position. The statement's grand total also matches the value
	// pattern, so a trailing surplus value is dropped; a short value list
	// leaves the remaining names at zero.
	indexed := make(map[string]int, len(names))
	var holdings []models.Holding
	for i, name := range names {
		if name == "" {
			continue
		}

		var value float64
		if i < len(values) {
			value = values[i]
		}

		if idx, ok := indexed[name]; ok {
			holdings[idx].Value += value
			continue
		}
		indexed[name] = len(holdings)
		holdings = append(holdings, models.Holding{Name: name, Value: value})
	}

	return holdings
}

// parseAmount converts a statement amount in either pt-BR ("1.234,56") or
// en-US ("1,234.56") notation to a float. Amounts always carry two decimal
// digits, so stripping separators and dividing by 100 handles both.
func parseAmount(raw string) float64 {
	digits := digitsOnly.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}

	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}

	return float64(cents) / 100
}
