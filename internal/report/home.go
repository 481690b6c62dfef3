package report

import (
	"context"

	"finreport/internal/aggregate"
	"finreport/internal/common"
	"finreport/internal/market"
	"finreport/internal/model"
	"finreport/internal/window"
)

type homeDigest struct {
	Greeting        string                     `json:"greeting"`
	Cards           []aggregate.CardSummary    `json:"cards"`
	TopTransactions []aggregate.TopTransaction `json:"top_transactions"`
	CurrencyRates   []market.Rate              `json:"currency_rates"`
	StockPrices     []market.Quote             `json:"stock_prices"`
}

// HomeDigest assembles the home page document for the month window ending
// at the reference instant ("2006-01-02 15:04:05" form).
//
// Unlike the other reports, a malformed reference instant propagates as an
// error: the home page fails loudly on bad input.
func (a *Assembler) HomeDigest(ctx context.Context, txns []model.Transaction, ref string) (string, error) {
	w, err := window.Month(ref)
	if err != nil {
		common.LogError(err, "failed to build home digest", common.Fields{"reference": ref})
		return "", err
	}

	sliced := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.HasDate() && w.Contains(t.Date) {
			sliced = append(sliced, t)
		}
	}
	common.LogDebug("sliced transactions for home digest", common.Fields{
		"from": w.Start, "to": w.End, "rows": len(sliced),
	})

	digest := homeDigest{
		Greeting:        greeting(a.Now().Hour()),
		Cards:           aggregate.CardSummaries(sliced),
		TopTransactions: aggregate.TopTransactions(sliced, aggregate.DefaultTopK),
		CurrencyRates:   a.Market.CurrencyRates(ctx, a.BaseCurrency),
		StockPrices:     a.Market.StockPrices(ctx),
	}
	return renderJSON(digest), nil
}

// greeting picks the salutation for the current wall-clock hour, not the
// report's reference instant.
func greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning!"
	case hour >= 12 && hour < 18:
		return "Good afternoon!"
	case hour >= 18 && hour < 23:
		return "Good evening!"
	default:
		return "Good night!"
	}
}
