package aggregate

import (
	"fmt"

	"finreport/internal/common"
	"finreport/internal/model"
	"finreport/internal/window"
)

// CategorySpend is one expense row selected by FilterCategorySpend.
type CategorySpend struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// FilterCategorySpend selects expenses in the given category whose operation
// timestamp lies inside the closed window, preserving table order.
//
// A row with an unparseable operation date anywhere in the table fails the
// call: the date column could not be normalized, so the selection would be
// unreliable. An empty selection is not an error.
func FilterCategorySpend(txns []model.Transaction, category string, w window.Window) ([]CategorySpend, error) {
	for _, t := range txns {
		if !t.HasDate() {
			return nil, fmt.Errorf("%w: operation date column could not be normalized", common.ErrInvalidFormat)
		}
	}

	result := make([]CategorySpend, 0)
	for _, t := range txns {
		if !t.IsSpend() || t.Category != category || !w.Contains(t.Date) {
			continue
		}
		result = append(result, CategorySpend{
			Date:        t.Date.Format("2006-01-02"),
			Amount:      Round2(t.PaymentAmount),
			Description: t.Description,
		})
	}
	return result, nil
}
