package order

import (
	"fmt"
	"time"
)

// MonthlyWindow is the calendar month (year + month) used to bucket orders
// for the weight-quota check. Two timestamps belong to the same window iff
// they share calendar year and month; there is no rolling 30-day window.
//
// The window is a derived value, never persisted. It is always computed from
// an explicitly passed reference time, not from an ambient clock, so the
// quota evaluator stays deterministic and unit-testable.
type MonthlyWindow struct {
	year  int
	month time.Month
}

// WindowOf returns the monthly window containing the given timestamp.
func WindowOf(t time.Time) MonthlyWindow {
	return MonthlyWindow{
		year:  t.Year(),
		month: t.Month(),
	}
}

// Year returns the calendar year of the window.
func (w MonthlyWindow) Year() int {
	return w.year
}

// Month returns the calendar month of the window.
func (w MonthlyWindow) Month() time.Month {
	return w.month
}

// Contains reports whether the timestamp falls inside this window.
func (w MonthlyWindow) Contains(t time.Time) bool {
	return t.Year() == w.year && t.Month() == w.month
}

// Start returns the first instant of the window in UTC.
// Useful for range queries against the persistence layer.
func (w MonthlyWindow) Start() time.Time {
	return time.Date(w.year, w.month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following window in UTC.
// The window covers [Start, End).
func (w MonthlyWindow) End() time.Time {
	return w.Start().AddDate(0, 1, 0)
}

// String returns the window in "YYYY-MM" form.
func (w MonthlyWindow) String() string {
	return fmt.Sprintf("%04d-%02d", w.year, int(w.month))
}
