// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrInvalidFormat = errors.New("invalid format")
	ErrMissingColumn = errors.New("missing column")

	// Informational: an operation matched no rows. Not reported as a failure.
	ErrNoData = errors.New("no data to analyze")

	// External API errors.
	ErrUpstream = errors.New("upstream request failed")
)

// MissingColumnError reports a required column absent from the transaction export.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// NewMissingColumnError creates a MissingColumnError for the named column.
func NewMissingColumnError(column string) error {
	return &MissingColumnError{Column: column}
}
