package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// mockCalendarSource is an in-memory driven.CalendarSource that counts fetches.
type mockCalendarSource struct {
	domain.Codec

	mu     sync.Mutex
	years  map[int]domain.WorkdayList
	errs   map[int]error
	calls  []int
	delay  time.Duration
	always domain.WorkdayList
}

func newMockCalendarSource(lists ...domain.WorkdayList) *mockCalendarSource {
	m := &mockCalendarSource{
		years: make(map[int]domain.WorkdayList),
		errs:  make(map[int]error),
	}
	for _, l := range lists {
		m.years[l.Year()] = l
	}
	return m
}

func (m *mockCalendarSource) Name() string {
	return "mock"
}

func (m *mockCalendarSource) Workdays(ctx context.Context, year int) (domain.WorkdayList, error) {
	m.mu.Lock()
	m.calls = append(m.calls, year)
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.always != nil {
		return m.always, nil
	}
	if err, ok := m.errs[year]; ok {
		return nil, err
	}
	list, ok := m.years[year]
	if !ok {
		return nil, fmt.Errorf("%w: no data for %d", domain.ErrDataUnavailable, year)
	}
	return list, nil
}

func (m *mockCalendarSource) fetched() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.calls))
	copy(out, m.calls)
	return out
}

// fixedClock returns a clock pinned to the given year.
func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// buildWorkdays returns the Monday to Friday business days of year, minus
// holidays, plus compensation workdays. Dates are given as YYYYMMDD.
func buildWorkdays(year int, holidays, compensation []string) domain.WorkdayList {
	off := make(map[domain.BusinessDayCode]bool, len(holidays))
	for _, h := range holidays {
		off[domain.BusinessDayCode(h)] = true
	}
	on := make(map[domain.BusinessDayCode]bool, len(compensation))
	for _, c := range compensation {
		on[domain.BusinessDayCode(c)] = true
	}

	var codes []domain.BusinessDayCode
	for d := date(year, time.January, 1); d.Year() == year; d = d.AddDate(0, 0, 1) {
		code := domain.DateToCode(d)
		weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		if (!weekend && !off[code]) || on[code] {
			codes = append(codes, code)
		}
	}

	list, err := domain.NewWorkdayList(year, codes)
	if err != nil {
		panic(err)
	}
	return list
}

// china2023 is the 2023 mainland China working calendar.
func china2023() domain.WorkdayList {
	return buildWorkdays(2023,
		[]string{
			// New Year, Spring Festival, Qingming
			"20230102", "20230123", "20230124", "20230125", "20230126", "20230127", "20230405",
			// Labour Day, Dragon Boat
			"20230501", "20230502", "20230503", "20230622", "20230623",
			// Mid-Autumn and National Day
			"20230929", "20231002", "20231003", "20231004", "20231005", "20231006",
		},
		[]string{"20230128", "20230129", "20230423", "20230506", "20230625", "20231007", "20231008"},
	)
}

// china2024 is the 2024 mainland China working calendar.
func china2024() domain.WorkdayList {
	return buildWorkdays(2024,
		[]string{
			"20240101",
			"20240212", "20240213", "20240214", "20240215", "20240216",
			"20240404", "20240405",
			"20240501", "20240502", "20240503",
			"20240610",
			"20240916", "20240917",
			"20241001", "20241002", "20241003", "20241004", "20241007",
		},
		[]string{"20240204", "20240218", "20240407", "20240428", "20240511", "20240914", "20240929", "20241012"},
	)
}
