package cli

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/custodia-labs/bizday/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/services"
)

// mockWorkdayService resolves against a fixed list of business days.
type mockWorkdayService struct {
	days  domain.WorkdayList
	limit int // last year answers may fall in unless considerNextYear
	err   error
}

func (m *mockWorkdayService) RecentWorkday(
	_ context.Context,
	date time.Time,
	considerNextYear bool,
) (domain.BusinessDayCode, bool, error) {
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

// mockCalendarService keeps imported years in memory.
type mockCalendarService struct {
	years    map[int]domain.WorkdayList
	imported []int
	err      error
}

func (m *mockCalendarService) Import(_ context.Context, year int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.imported = append(m.imported, year)
	m.years[year] = domain.WorkdayList{domain.DateToCode(time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC))}
	return len(m.years[year]), nil
}

func (m *mockCalendarService) Years(_ context.Context) ([]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return slices.Sorted(maps.Keys(m.years)), nil
}

func (m *mockCalendarService) Show(_ context.Context, year int) (domain.WorkdayList, error) {
	if m.err != nil {
		return nil, m.err
	}
	list, ok := m.years[year]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return list, nil
}

func (m *mockCalendarService) Remove(_ context.Context, year int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.years[year]; !ok {
		return domain.ErrNotFound
	}
	delete(m.years, year)
	return nil
}

// testDays are the business days around the 2023 National Day holiday in
// mainland China, followed by the first business days of 2024.
func testDays() domain.WorkdayList {
	return domain.WorkdayList{
		"20230927", "20230928",
		"20231007", "20231008", "20231009", "20231010",
		"20231228", "20231229",
		"20240102", "20240103",
	}
}

// testMocks exposes the services installed by setupTestServices.
type testMocks struct {
	workday  *mockWorkdayService
	calendar *mockCalendarService
	settings *services.SettingsService
}

var mocks testMocks

// setupTestServices installs mock services and resets command flags.
// The returned function restores the previous state.
func setupTestServices() func() {
	mocks = testMocks{
		workday:  &mockWorkdayService{days: testDays(), limit: 2023},
		calendar: &mockCalendarService{years: map[int]domain.WorkdayList{2023: testDays()[:6]}},
		settings: services.NewSettingsService(memory.NewConfigStore()),
	}
	SetServices(Services{
		Workday:  mocks.workday,
		Calendar: mocks.calendar,
		Settings: mocks.settings,
	})
	resetFlags()

	return func() {
		SetServices(Services{})
		resetFlags()
	}
}

func resetFlags() {
	nextYear = false
	nextCount = 1
	asJSON = false
	verbose = false
	configDir = ""
}
