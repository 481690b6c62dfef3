// Package report composes aggregation and market data into the three
// JSON documents the application produces.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"finreport/internal/common"
	"finreport/internal/market"
)

// MarketData is the narrow interface the home digest needs from the
// market data client.
type MarketData interface {
	CurrencyRates(ctx context.Context, base string) []market.Rate
	StockPrices(ctx context.Context) []market.Quote
}

// Assembler builds report documents. Now is injectable so greeting and
// default-date behavior are testable; it defaults to time.Now.
type Assembler struct {
	Market       MarketData
	Now          func() time.Time
	BaseCurrency string
}

// NewAssembler creates an Assembler using the wall clock.
func NewAssembler(m MarketData, baseCurrency string) *Assembler {
	return &Assembler{
		Market:       m,
		Now:          time.Now,
		BaseCurrency: baseCurrency,
	}
}

// renderJSON serializes v indented, with non-ASCII characters left as-is.
func renderJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		common.LogError(err, "failed to render report", nil)
		return `{"error": "failed to render report"}`
	}
	return strings.TrimRight(buf.String(), "\n")
}

// errorJSON wraps a failure message in the error object shape.
func errorJSON(message string) string {
	return renderJSON(map[string]string{"error": message})
}
