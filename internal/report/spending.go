package report

import (
	"time"

	"finreport/internal/aggregate"
	"finreport/internal/common"
	"finreport/internal/model"
	"finreport/internal/window"
)

// SpendingByCategory reports the category's expenses over the 90 days
// preceding startDate ("02.01.2006" form; empty means now).
//
// The result is always a JSON document: either {<category>: [...]}, an
// empty list when nothing matched, or {"error": ...} on failure.
func (a *Assembler) SpendingByCategory(txns []model.Transaction, category string, startDate string) string {
	var ref time.Time
	if startDate == "" {
		ref = a.Now()
	} else {
		parsed, err := window.ParseDay(startDate)
		if err != nil {
			common.LogError(err, "failed to build spending report", common.Fields{
				"category": category, "start_date": startDate,
			})
			return errorJSON(err.Error())
		}
		ref = parsed
	}

	w := window.Lookback(ref, window.DefaultLookbackDays)
	rows, err := aggregate.FilterCategorySpend(txns, category, w)
	if err != nil {
		common.LogError(err, "failed to build spending report", common.Fields{
			"category": category, "from": w.Start, "to": w.End,
		})
		return errorJSON(err.Error())
	}

	common.LogInfo("spending report assembled", common.Fields{
		"category": category, "rows": len(rows),
	})
	return renderJSON(map[string][]aggregate.CategorySpend{category: rows})
}
