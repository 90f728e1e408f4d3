package tui

import (
	"context"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// mockWorkdayService resolves against a fixed list of business days.
type mockWorkdayService struct {
	days  domain.WorkdayList
	limit int // last year answers may fall in unless considerNextYear
	err   error
	calls int
}

func (m *mockWorkdayService) RecentWorkday(
	_ context.Context,
	date time.Time,
	considerNextYear bool,
) (domain.BusinessDayCode, bool, error) {
	m.calls++
	if m.err != nil {
		return "", false, m.err
	}
	i, ok := m.days.Search(domain.DateToCode(date))
	if !ok || (!considerNextYear && m.days[i].Year() > m.limit) {
		return "", false, nil
	}
	return m.days[i], true, nil
}

func (m *mockWorkdayService) NextWorkday(
	ctx context.Context,
	date time.Time,
	count int,
	considerNextYear bool,
) (time.Time, bool, error) {
	anchor, found, err := m.RecentWorkday(ctx, date, considerNextYear)
	if err != nil || !found {
		return time.Time{}, found, err
	}
	if anchor != domain.DateToCode(date) && count > 0 {
		count--
	}
	pos := m.days.IndexOf(anchor) + count
	if pos >= len(m.days) || (!considerNextYear && m.days[pos].Year() > m.limit) {
		return time.Time{}, false, nil
	}
	return m.days[pos].Date(), true, nil
}

func (m *mockWorkdayService) IsWorkday(ctx context.Context, date time.Time, considerNextYear bool) (bool, error) {
	code, found, err := m.RecentWorkday(ctx, date, considerNextYear)
	if err != nil || !found {
		return false, err
	}
	return code == domain.DateToCode(date), nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// testDays returns the business days of 2023 and 2024 with the 2023
// National Day holiday and its two compensation Saturdays and Sundays.
func testDays() domain.WorkdayList {
	holidays := map[time.Time]bool{}
	for d := date(2023, time.October, 2); d.Day() <= 6; d = d.AddDate(0, 0, 1) {
		holidays[d] = true
	}
	compensation := map[time.Time]bool{
		date(2023, time.October, 7): true,
		date(2023, time.October, 8): true,
	}

	var days domain.WorkdayList
	for d := date(2023, time.January, 1); d.Year() < 2025; d = d.AddDate(0, 0, 1) {
		if (!isWeekend(d) && !holidays[d]) || compensation[d] {
			days = append(days, domain.DateToCode(d))
		}
	}
	return days
}

func newMockService() *mockWorkdayService {
	return &mockWorkdayService{days: testDays(), limit: 2023}
}
