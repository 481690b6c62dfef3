package aggregate

import (
	"sort"

	"finreport/internal/model"
	"finreport/internal/window"
)

// DefaultTopK is the number of transactions the home digest ranks.
const DefaultTopK = 5

// TopTransaction is one entry of the top-spend ranking.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// TopTransactions ranks confirmed transactions by rounded operation amount
// descending and returns the first k. Ties keep their original relative
// order. Fewer than k qualifying rows is not an error.
func TopTransactions(txns []model.Transaction, k int) []TopTransaction {
	confirmed := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Status == model.StatusOK {
			confirmed = append(confirmed, t)
		}
	}

	sort.SliceStable(confirmed, func(i, j int) bool {
		return confirmed[i].RoundedAmount > confirmed[j].RoundedAmount
	})

	if len(confirmed) > k {
		confirmed = confirmed[:k]
	}

	result := make([]TopTransaction, 0, len(confirmed))
	for _, t := range confirmed {
		result = append(result, TopTransaction{
			Date:        t.Date.Format(window.DayLayout),
			Amount:      Round2(t.RoundedAmount),
			Category:    t.Category,
			Description: t.Description,
		})
	}
	return result
}
