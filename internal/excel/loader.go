// Package excel loads the transaction export from an .xlsx workbook and
// validates it into typed records at the boundary.
package excel

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"finreport/internal/model"
)

// Loader reads transactions from a fixed workbook path and sheet name.
type Loader struct {
	path  string
	sheet string
}

// NewLoader creates a Loader for the given workbook path and sheet name.
func NewLoader(path, sheet string) *Loader {
	return &Loader{path: path, sheet: sheet}
}

// Load reads the configured sheet and parses it into transactions.
// An empty sheet yields an empty table, not an error.
func (l *Loader) Load() ([]model.Transaction, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", l.path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close workbook", "path", l.path, "error", closeErr)
		}
	}()

	rows, err := f.GetRows(l.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", l.sheet, err)
	}
	if len(rows) == 0 {
		slog.Info("workbook sheet is empty", "path", l.path, "sheet", l.sheet)
		return []model.Transaction{}, nil
	}

	txns, err := ParseRows(rows[0], rows[1:])
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded transaction export", "path", l.path, "sheet", l.sheet, "rows", len(txns))
	return txns, nil
}
