// Package window computes the inclusive date ranges reports slice transactions by.
package window

import (
	"fmt"
	"time"

	"finreport/internal/common"
)

// RefLayout is the canonical string form of a reference instant.
const RefLayout = "2006-01-02 15:04:05"

// DayLayout is the day-first date form accepted by the spending report.
const DayLayout = "02.01.2006"

// DefaultLookbackDays is the trailing interval used by the spending report.
const DefaultLookbackDays = 90

// Window is a closed interval [Start, End] over operation timestamps.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Month returns the window from the first calendar day of the reference
// instant's month through the reference instant itself.
func Month(ref string) (Window, error) {
	end, err := time.Parse(RefLayout, ref)
	if err != nil {
		return Window{}, fmt.Errorf("%w: reference instant %q, want %q", common.ErrInvalidFormat, ref, RefLayout)
	}
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	return Window{Start: start, End: end}, nil
}

// Lookback returns the trailing window of the given number of days ending
// at the reference instant.
func Lookback(ref time.Time, days int) Window {
	return Window{
		Start: ref.AddDate(0, 0, -days),
		End:   ref,
	}
}

// ParseDay parses a DD.MM.YYYY date string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, want %q", common.ErrInvalidFormat, s, DayLayout)
	}
	return t, nil
}
