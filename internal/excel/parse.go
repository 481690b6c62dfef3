package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finreport/internal/common"
	"finreport/internal/model"
)

// Column headers of the transaction export.
const (
	ColOperationDate = "Operation Date"
	ColPaymentAmount = "Payment Amount"
	ColRoundedAmount = "Rounded Operation Amount"
	ColCategory      = "Category"
	ColCardNumber    = "Card Number"
	ColDescription   = "Description"
	ColStatus        = "Status"
)

// requiredColumns must all be present for aggregation to make sense.
var requiredColumns = []string{
	ColOperationDate,
	ColPaymentAmount,
	ColRoundedAmount,
	ColCategory,
}

// Operation dates are day-first, with or without a time component.
var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
}

// ParseRows converts a header row plus data rows into typed transactions.
//
// Any required column absent from the header fails with a MissingColumnError
// naming it. An unparseable date cell yields a zero Date on that record;
// consumers decide whether that is tolerable. A missing or blank card cell
// becomes the CardNotSpecified sentinel.
func ParseRows(headers []string, rows [][]string) ([]model.Transaction, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, common.NewMissingColumnError(col)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	txns := make([]model.Transaction, 0, len(rows))
	for n, row := range rows {
		payment, err := parseAmount(cell(row, ColPaymentAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", n+2, ColPaymentAmount, err)
		}
		rounded, err := parseAmount(cell(row, ColRoundedAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", n+2, ColRoundedAmount, err)
		}

		card := cell(row, ColCardNumber)
		if card == "" {
			card = model.CardNotSpecified
		}

		txns = append(txns, model.Transaction{
			Date:          parseDate(cell(row, ColOperationDate)),
			Card:          card,
			Category:      cell(row, ColCategory),
			Description:   cell(row, ColDescription),
			Status:        cell(row, ColStatus),
			PaymentAmount: payment,
			RoundedAmount: rounded,
		})
	}
	return txns, nil
}

// parseDate tolerates unparseable cells by returning the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseAmount accepts both dot and comma decimal separators. A blank cell
// counts as zero; anything else unparseable is a hard error.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q: %w", s, common.ErrInvalidFormat)
	}
	return v, nil
}
