package market

import (
	"encoding/json"
	"os"

	"finreport/internal/common"
)

// userSettings is the symbol watchlist the user keeps in a JSON file.
type userSettings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}

// loadSettings reads the watchlist file. A missing or undecodable file is
// not fatal: it is logged and reported as not ok, and the caller degrades
// to an empty result.
func loadSettings(path string) (userSettings, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		common.LogError(err, "failed to read user settings", common.Fields{"path": path})
		return userSettings{}, false
	}

	var s userSettings
	if err := json.Unmarshal(data, &s); err != nil {
		common.LogError(err, "failed to decode user settings", common.Fields{"path": path})
		return userSettings{}, false
	}
	return s, true
}
