package aggregate

import (
	"math"
	"strings"

	"finreport/internal/model"
)

// CardSummary is the per-card spend total with the estimated cashback.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// CardSummaries groups expenses by card and sums the rounded operation
// amounts per card. Cards appear in the order they first occur in the table.
// An empty table yields an empty summary, not an error.
func CardSummaries(txns []model.Transaction) []CardSummary {
	sums := make(map[string]float64)
	var order []string

	for _, t := range txns {
		if !t.IsSpend() {
			continue
		}
		if _, seen := sums[t.Card]; !seen {
			order = append(order, t.Card)
		}
		sums[t.Card] += t.RoundedAmount
	}

	result := make([]CardSummary, 0, len(order))
	for _, card := range order {
		spent := math.Abs(sums[card])
		result = append(result, CardSummary{
			LastDigits: strings.ReplaceAll(card, "*", ""),
			TotalSpent: Round2(spent),
			Cashback:   Round2(spent * CashbackRate),
		})
	}
	return result
}
