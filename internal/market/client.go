// Package market provides thin read-through clients for the external
// currency-rate and stock-price APIs. Both degrade to an empty result on
// any upstream failure; the reports still render without market data.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"finreport/internal/common"
)

// Default endpoints, overridable through configuration (tests point them at
// a local server).
const (
	DefaultCurrencyURL = "https://api.apilayer.com/exchangerates_data/latest"
	DefaultStockURL    = "http://api.marketstack.com/v1/eod/latest"
)

// Environment variables holding the API keys.
const (
	CurrencyAPIKeyEnv = "API_KEY_APILAYER"
	StockAPIKeyEnv    = "API_KEY_MARKETSTACK"
)

// Rate is one currency quoted against the base currency.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// Quote is one stock's latest end-of-day price.
type Quote struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// Config holds the client's endpoints and the watchlist file location.
type Config struct {
	SettingsPath string
	CurrencyURL  string
	StockURL     string
}

// Client fetches currency and stock snapshots for the user's watchlist.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a market data client. Zero-value endpoint fields fall
// back to the public APIs.
func NewClient(cfg Config) *Client {
	if cfg.CurrencyURL == "" {
		cfg.CurrencyURL = DefaultCurrencyURL
	}
	if cfg.StockURL == "" {
		cfg.StockURL = DefaultStockURL
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// CurrencyRates returns the watched currencies quoted against base.
// Rates come back in watchlist order, inverted so they read as "units of
// base per one unit of currency". Any failure yields an empty list.
func (c *Client) CurrencyRates(ctx context.Context, base string) []Rate {
	result := make([]Rate, 0)

	settings, ok := loadSettings(c.cfg.SettingsPath)
	if !ok || len(settings.UserCurrencies) == 0 {
		return result
	}

	params := url.Values{}
	params.Set("symbols", strings.Join(settings.UserCurrencies, ","))
	params.Set("base", base)

	var decoded ratesResponse
	if err := c.getJSON(ctx, c.cfg.CurrencyURL, params, map[string]string{
		"apikey": os.Getenv(CurrencyAPIKeyEnv),
	}, &decoded); err != nil {
		common.LogError(err, "failed to fetch currency rates", common.Fields{
			"currencies": settings.UserCurrencies,
			"base":       base,
		})
		return result
	}

	for _, currency := range settings.UserCurrencies {
		value, ok := decoded.Rates[currency]
		if !ok || value == 0 {
			continue
		}
		result = append(result, Rate{
			Currency: currency,
			Rate:     round2(1 / value),
		})
	}
	return result
}

type stocksResponse struct {
	Data []struct {
		Symbol   string  `json:"symbol"`
		AdjClose float64 `json:"adj_close"`
	} `json:"data"`
}

// StockPrices returns the latest end-of-day price for each watched stock.
// Any failure yields an empty list.
func (c *Client) StockPrices(ctx context.Context) []Quote {
	result := make([]Quote, 0)

	settings, ok := loadSettings(c.cfg.SettingsPath)
	if !ok || len(settings.UserStocks) == 0 {
		return result
	}

	params := url.Values{}
	params.Set("symbols", strings.Join(settings.UserStocks, ","))

	var decoded stocksResponse
	if err := c.getJSON(ctx, c.cfg.StockURL, params, map[string]string{
		"access_key": os.Getenv(StockAPIKeyEnv),
	}, &decoded); err != nil {
		common.LogError(err, "failed to fetch stock prices", common.Fields{
			"stocks": settings.UserStocks,
		})
		return result
	}

	for _, entry := range decoded.Data {
		result = append(result, Quote{
			Stock: entry.Symbol,
			Price: entry.AdjClose,
		})
	}
	return result
}

// getJSON performs a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, params url.Values, headers map[string]string, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL %s: %w", rawURL, err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d from %s", common.ErrUpstream, resp.StatusCode, u.Host)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", common.ErrUpstream, err)
	}
	return nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
