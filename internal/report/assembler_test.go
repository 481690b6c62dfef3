package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finreport/internal/market"
	"finreport/internal/model"
)

// fakeMarket returns canned market data without touching the network.
type fakeMarket struct {
	rates  []market.Rate
	quotes []market.Quote
}

func (f *fakeMarket) CurrencyRates(_ context.Context, _ string) []market.Rate {
	if f.rates == nil {
		return []market.Rate{}
	}
	return f.rates
}

func (f *fakeMarket) StockPrices(_ context.Context) []market.Quote {
	if f.quotes == nil {
		return []market.Quote{}
	}
	return f.quotes
}

// newTestAssembler pins the clock so greetings and default dates are stable.
func newTestAssembler(m MarketData, now time.Time) *Assembler {
	return &Assembler{
		Market:       m,
		Now:          func() time.Time { return now },
		BaseCurrency: "RUB",
	}
}

// decode unmarshals a report document for structural assertions.
func decode(t *testing.T, doc string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &out))
	return out
}

func opDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func spend(date time.Time, amount float64, category string) model.Transaction {
	return model.Transaction{
		Date:          date,
		Card:          "*1234",
		Category:      category,
		Status:        model.StatusOK,
		PaymentAmount: amount,
		RoundedAmount: -amount,
	}
}
