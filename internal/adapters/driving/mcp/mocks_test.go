package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// mockWorkdayService is a mock implementation of driving.WorkdayService.
type mockWorkdayService struct {
	code    domain.BusinessDayCode
	next    time.Time
	found   bool
	workday bool
	err     error

	gotDate  time.Time
	gotCount int
	gotNext  bool
}

func (m *mockWorkdayService) RecentWorkday(
	_ context.Context,
	date time.Time,
	considerNextYear bool,
) (domain.BusinessDayCode, bool, error) {
	m.gotDate, m.gotNext = date, considerNextYear
	return m.code, m.found, m.err
}

func (m *mockWorkdayService) NextWorkday(
	_ context.Context,
	date time.Time,
	count int,
	considerNextYear bool,
) (time.Time, bool, error) {
	m.gotDate, m.gotCount, m.gotNext = date, count, considerNextYear
	return m.next, m.found, m.err
}

func (m *mockWorkdayService) IsWorkday(_ context.Context, date time.Time, considerNextYear bool) (bool, error) {
	m.gotDate, m.gotNext = date, considerNextYear
	return m.workday, m.err
}

// mockCalendarService is a mock implementation of driving.CalendarService.
type mockCalendarService struct {
	years []int
	list  domain.WorkdayList
	err   error
}

func (m *mockCalendarService) Import(_ context.Context, _ int) (int, error) {
	return len(m.list), m.err
}

func (m *mockCalendarService) Years(_ context.Context) ([]int, error) {
	return m.years, m.err
}

func (m *mockCalendarService) Show(_ context.Context, _ int) (domain.WorkdayList, error) {
	return m.list, m.err
}

func (m *mockCalendarService) Remove(_ context.Context, _ int) error {
	return m.err
}
