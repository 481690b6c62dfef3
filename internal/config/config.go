package config

import (
	"github.com/spf13/viper"
)

// Config holds the fixed inputs the reports read from.
type Config struct {
	// DataFile is the transaction export workbook.
	DataFile string
	// SheetName is the sheet holding the operations table.
	SheetName string
	// UserSettingsFile is the JSON watchlist of currencies and stocks.
	UserSettingsFile string
	// BaseCurrency is what currency rates are quoted against.
	BaseCurrency string
	// CurrencyAPIURL and StockAPIURL override the public endpoints.
	CurrencyAPIURL string
	StockAPIURL    string
}

// SetDefaults registers the default values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.file", "data/operations.xlsx")
	v.SetDefault("data.sheet", "Operations Report")
	v.SetDefault("data.user_settings", "user_settings.json")
	v.SetDefault("market.base_currency", "RUB")
	v.SetDefault("market.currency_url", "")
	v.SetDefault("market.stock_url", "")
}

// Load reads the configuration from the given viper instance.
func Load(v *viper.Viper) Config {
	return Config{
		DataFile:         ExpandPath(v.GetString("data.file")),
		SheetName:        v.GetString("data.sheet"),
		UserSettingsFile: ExpandPath(v.GetString("data.user_settings")),
		BaseCurrency:     v.GetString("market.base_currency"),
		CurrencyAPIURL:   v.GetString("market.currency_url"),
		StockAPIURL:      v.GetString("market.stock_url"),
	}
}
