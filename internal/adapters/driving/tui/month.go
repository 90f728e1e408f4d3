package tui

import (
	"context"
	"time"

	"github.com/custodia-labs/bizday/internal/core/ports/driving"
)

// monthWorkdays returns the business days of the month starting at first.
//
// It walks the month by repeatedly asking for the nearest business day, so a
// warm cache answers every step. complete is false when the walk stopped at
// the horizon set by considerNextYear.
func monthWorkdays(
	ctx context.Context,
	svc driving.WorkdayService,
	first time.Time,
	considerNextYear bool,
) (days map[int]bool, complete bool, err error) {
	days = make(map[int]bool)
	for d := first; d.Month() == first.Month(); {
		code, found, err := svc.RecentWorkday(ctx, d, considerNextYear)
		if err != nil {
			return nil, false, err
		}
		if !found {
			return days, false, nil
		}

		next := code.Date()
		if next.Year() != first.Year() || next.Month() != first.Month() {
			break
		}
		days[next.Day()] = true
		d = next.AddDate(0, 0, 1)
	}
	return days, true, nil
}

// firstOfMonth returns midnight UTC of the first day of t's month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// isWeekend reports whether t falls on Saturday or Sunday.
func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
