// Package model defines the typed transaction record shared across the application.
package model

import (
	"strings"
	"time"
)

// CardNotSpecified is the sentinel stored when the export leaves the card cell blank.
const CardNotSpecified = "Card not specified"

// StatusOK marks a confirmed transaction in the export.
const StatusOK = "OK"

// Transaction represents a single row of the transaction export.
// Amounts are signed; a negative PaymentAmount is a spend.
type Transaction struct {
	// Date is the operation timestamp. The zero value means the source
	// cell could not be parsed as a date.
	Date          time.Time
	Card          string
	Category      string
	Description   string
	Status        string
	PaymentAmount float64
	// RoundedAmount is the pre-rounded operation amount the export carries
	// alongside the raw payment amount; all aggregation sums use it.
	RoundedAmount float64
}

// IsSpend reports whether the transaction is an expense.
func (t Transaction) IsSpend() bool {
	return t.PaymentAmount < 0
}

// HasDate reports whether the operation timestamp was parseable.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// LastDigits returns the card identifier with the masking characters removed.
func (t Transaction) LastDigits() string {
	return strings.ReplaceAll(t.Card, "*", "")
}
