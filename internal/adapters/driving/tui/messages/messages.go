// Package messages defines Bubbletea message types for the TUI.
package messages

import "time"

// MonthLoaded carries the business days of a month back to the model.
type MonthLoaded struct {
	// Month is the first day of the loaded month.
	Month time.Time

	// Workdays holds the days of the month that are business days.
	Workdays map[int]bool

	// Complete is false when part of the month lies beyond the permitted
	// horizon and was not resolved.
	Complete bool

	Err error
}

// DayResolved carries the next business day after the cursor.
type DayResolved struct {
	Date  time.Time
	Next  time.Time
	Found bool
	Err   error
}
