package main

import (
	"github.com/spf13/viper"

	"finreport/internal/config"
	"finreport/internal/excel"
	"finreport/internal/market"
	"finreport/internal/model"
	"finreport/internal/report"
)

// loadTable reads the transaction export the commands work on.
func loadTable(cfg config.Config) ([]model.Transaction, error) {
	return excel.NewLoader(cfg.DataFile, cfg.SheetName).Load()
}

// buildAssembler wires the report assembler with the configured market client.
func buildAssembler(cfg config.Config) *report.Assembler {
	client := market.NewClient(market.Config{
		SettingsPath: cfg.UserSettingsFile,
		CurrencyURL:  cfg.CurrencyAPIURL,
		StockURL:     cfg.StockAPIURL,
	})
	return report.NewAssembler(client, cfg.BaseCurrency)
}

// currentConfig snapshots the viper state after initConfig ran.
func currentConfig() config.Config {
	return config.Load(viper.GetViper())
}
