package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCurrencyRates(t *testing.T) {
	var gotQuery string
	var gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		_, _ = w.Write([]byte(`{"success": true, "base": "RUB", "rates": {"USD": 0.013, "EUR": 0.011, "GBP": 0.0095}}`))
	}))
	defer server.Close()

	t.Setenv(CurrencyAPIKeyEnv, "test-key")
	settings := writeSettings(t, `{"user_currencies": ["USD", "EUR", "GBP"], "user_stocks": []}`)

	client := NewClient(Config{
		SettingsPath: settings,
		CurrencyURL:  server.URL,
	})
	rates := client.CurrencyRates(context.Background(), "RUB")

	require.Len(t, rates, 3)
	// Watchlist order, rates inverted to "RUB per unit".
	assert.Equal(t, Rate{Currency: "USD", Rate: 76.92}, rates[0])
	assert.Equal(t, Rate{Currency: "EUR", Rate: 90.91}, rates[1])
	assert.Equal(t, Rate{Currency: "GBP", Rate: 105.26}, rates[2])

	assert.Contains(t, gotQuery, "base=RUB")
	assert.Contains(t, gotQuery, "symbols=USD%2CEUR%2CGBP")
	assert.Equal(t, "test-key", gotAPIKey)
}

func TestCurrencyRates_Non200DegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	settings := writeSettings(t, `{"user_currencies": ["USD"]}`)
	client := NewClient(Config{SettingsPath: settings, CurrencyURL: server.URL})

	rates := client.CurrencyRates(context.Background(), "RUB")
	assert.Empty(t, rates)
	assert.NotNil(t, rates)
}

func TestCurrencyRates_SettingsFileMissing(t *testing.T) {
	client := NewClient(Config{SettingsPath: filepath.Join(t.TempDir(), "nope.json")})

	rates := client.CurrencyRates(context.Background(), "RUB")
	assert.Empty(t, rates)
}

func TestCurrencyRates_SettingsFileUndecodable(t *testing.T) {
	settings := writeSettings(t, `{"user_currencies": `)
	client := NewClient(Config{SettingsPath: settings})

	rates := client.CurrencyRates(context.Background(), "RUB")
	assert.Empty(t, rates)
}

func TestStockPrices(t *testing.T) {
	var gotAccessKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccessKey = r.Header.Get("access_key")
		_, _ = w.Write([]byte(`{"data": [
			{"symbol": "AAPL", "adj_close": 150.12},
			{"symbol": "GOOGL", "adj_close": 2750.45},
			{"symbol": "MSFT", "adj_close": 305.67}
		]}`))
	}))
	defer server.Close()

	t.Setenv(StockAPIKeyEnv, "stock-key")
	settings := writeSettings(t, `{"user_stocks": ["AAPL", "GOOGL", "MSFT"]}`)

	client := NewClient(Config{SettingsPath: settings, StockURL: server.URL})
	quotes := client.StockPrices(context.Background())

	require.Len(t, quotes, 3)
	assert.Equal(t, Quote{Stock: "AAPL", Price: 150.12}, quotes[0])
	assert.Equal(t, Quote{Stock: "GOOGL", Price: 2750.45}, quotes[1])
	assert.Equal(t, Quote{Stock: "MSFT", Price: 305.67}, quotes[2])
	assert.Equal(t, "stock-key", gotAccessKey)
}

func TestStockPrices_TransportFailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	settings := writeSettings(t, `{"user_stocks": ["AAPL"]}`)
	client := NewClient(Config{SettingsPath: settings, StockURL: server.URL})

	quotes := client.StockPrices(context.Background())
	assert.Empty(t, quotes)
	assert.NotNil(t, quotes)
}

func TestEmptyWatchlistSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer server.Close()

	settings := writeSettings(t, `{"user_currencies": [], "user_stocks": []}`)
	client := NewClient(Config{
		SettingsPath: settings,
		CurrencyURL:  server.URL,
		StockURL:     server.URL,
	})

	assert.Empty(t, client.CurrencyRates(context.Background(), "RUB"))
	assert.Empty(t, client.StockPrices(context.Background()))
	assert.False(t, called)
}
