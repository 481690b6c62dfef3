package report

import (
	"fmt"
	"strconv"

	"finreport/internal/aggregate"
	"finreport/internal/common"
	"finreport/internal/excel"
	"finreport/internal/model"
)

// Messages for the degenerate cashback outcomes.
const (
	msgNoData         = "No data to analyze."
	msgNoTransactions = "No transactions for the requested month."
	msgBadPeriod      = "invalid year or month format"
)

type cashbackReport struct {
	Period           string                       `json:"period"`
	CashbackAnalysis []aggregate.CategoryCashback `json:"cashback_analysis"`
}

// CashbackAnalysis estimates per-category cashback for the given year and
// month (decimal strings). Failures and empty outcomes are reported inside
// the JSON document, never as a Go error.
func (a *Assembler) CashbackAnalysis(txns []model.Transaction, yearStr string, monthStr string) string {
	if len(txns) == 0 {
		common.LogInfo("cashback analysis requested on empty table", nil)
		return errorJSON(msgNoData)
	}

	year, errYear := strconv.Atoi(yearStr)
	month, errMonth := strconv.Atoi(monthStr)
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		common.LogError(common.ErrInvalidFormat, "failed to build cashback analysis", common.Fields{
			"year": yearStr, "month": monthStr,
		})
		return errorJSON(msgBadPeriod)
	}

	entries := aggregate.CashbackByCategory(txns, year, month)
	if len(entries) == 0 {
		common.LogInfo("no transactions matched the cashback period", common.Fields{
			"year": year, "month": month,
		})
		return renderJSON(map[string]string{"info": msgNoTransactions})
	}

	common.LogInfo("cashback analysis assembled", common.Fields{
		"year": year, "month": month, "categories": len(entries),
	})
	return renderJSON(cashbackReport{
		Period:           fmt.Sprintf("%04d-%02d", year, month),
		CashbackAnalysis: entries,
	})
}

// CashbackAnalysisFromRows runs the analysis on a raw header+rows table,
// validating required columns at the boundary. A malformed table becomes an
// {"error": ...} document, like every other cashback failure.
func (a *Assembler) CashbackAnalysisFromRows(headers []string, rows [][]string, yearStr string, monthStr string) string {
	txns, err := excel.ParseRows(headers, rows)
	if err != nil {
		common.LogError(err, "failed to parse export table for cashback analysis", common.Fields{
			"year": yearStr, "month": monthStr,
		})
		return errorJSON(err.Error())
	}
	return a.CashbackAnalysis(txns, yearStr, monthStr)
}
