package aggregate

import (
	"math"
	"sort"

	"finreport/internal/model"
)

// CategoryCashback is the per-category spend summary with the estimated reward.
type CategoryCashback struct {
	Category          string  `json:"category"`
	TotalSpent        float64 `json:"total_spent"`
	CashbackRate      float64 `json:"cashback_rate"`
	PotentialCashback float64 `json:"potential_cashback"`
}

// Categories that never earn cashback. Fixed, case-sensitive, exact match.
var cashbackExcluded = map[string]struct{}{
	"Transfers": {},
	"Cash":      {},
}

// CashbackByCategory sums expenses per category for the given calendar month
// and estimates the cashback each category would earn.
//
// Rows with an unparseable operation date are skipped rather than failing the
// whole call. Entries come back sorted by spend descending; ties keep the
// order the categories first appeared in the table.
func CashbackByCategory(txns []model.Transaction, year int, month int) []CategoryCashback {
	sums := make(map[string]float64)
	var order []string

	for _, t := range txns {
		if !t.HasDate() {
			continue
		}
		if t.Date.Year() != year || int(t.Date.Month()) != month {
			continue
		}
		if !t.IsSpend() {
			continue
		}
		if _, excluded := cashbackExcluded[t.Category]; excluded {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] += t.RoundedAmount
	}

	result := make([]CategoryCashback, 0, len(order))
	for _, category := range order {
		spent := math.Abs(sums[category])
		result = append(result, CategoryCashback{
			Category:          category,
			TotalSpent:        Round2(spent),
			CashbackRate:      CashbackRate,
			PotentialCashback: Round2(spent * CashbackRate),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent > result[j].TotalSpent
	})

	return result
}
