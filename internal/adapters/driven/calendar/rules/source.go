// Package rules provides an offline driven.CalendarSource that derives
// business days from weekend and national holiday rules.
package rules

import (
	"context"
	"fmt"
	"strings"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
	"github.com/custodia-labs/bizday/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CalendarSource = (*Source)(nil)

// Name identifies the source in logs and errors.
const Name = "rules"

// Config holds rules source configuration.
type Config struct {
	// Country selects the national holiday set.
	Country string

	// ExtraHolidays are YYYYMMDD dates treated as non-business days.
	ExtraHolidays []string

	// ExtraWorkdays are YYYYMMDD dates treated as business days.
	// They win over weekends, national holidays and ExtraHolidays.
	ExtraWorkdays []string
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.RulesSettings) Config {
	return Config{
		Country:       s.Country,
		ExtraHolidays: s.ExtraHolidays,
		ExtraWorkdays: s.ExtraWorkdays,
	}
}

// Source computes business days from a rickar/cal business calendar.
type Source struct {
	domain.Codec

	country       string
	calendar      *cal.BusinessCalendar
	extraHolidays map[domain.BusinessDayCode]bool
	extraWorkdays map[domain.BusinessDayCode]bool
}

// New creates a rules source. Unknown countries are domain.ErrUnsupportedType
// and malformed extra dates are domain.ErrInvalidInput.
func New(cfg Config) (*Source, error) {
	country := strings.ToLower(cfg.Country)
	if country == "" {
		country = domain.DefaultRulesCountry
	}

	calendar, err := nationalCalendar(country)
	if err != nil {
		return nil, err
	}

	holidays, err := codeSet(cfg.ExtraHolidays)
	if err != nil {
		return nil, fmt.Errorf("extra holidays: %w", err)
	}
	workdays, err := codeSet(cfg.ExtraWorkdays)
	if err != nil {
		return nil, fmt.Errorf("extra workdays: %w", err)
	}

	return &Source{
		country:       country,
		calendar:      calendar,
		extraHolidays: holidays,
		extraWorkdays: workdays,
	}, nil
}

// Name returns "rules".
func (s *Source) Name() string {
	return Name
}

// Workdays computes the business days of year.
func (s *Source) Workdays(ctx context.Context, year int) (domain.WorkdayList, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
	}

	var codes []domain.BusinessDayCode
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		code := domain.DateToCode(d)
		if s.isWorkday(d, code) {
			codes = append(codes, code)
		}
	}

	list, err := domain.NewWorkdayList(year, codes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s rules for %d: %w", domain.ErrDataUnavailable, s.country, year, err)
	}

	logger.Debug("Computed %d business days for %d from %s rules", len(list), year, s.country)
	return list, nil
}

func (s *Source) isWorkday(d time.Time, code domain.BusinessDayCode) bool {
	if s.extraWorkdays[code] {
		return true
	}
	if s.extraHolidays[code] {
		return false
	}
	return s.calendar.IsWorkday(d)
}

// nationalCalendar returns a business calendar with the observed national
// holidays of country.
func nationalCalendar(country string) (*cal.BusinessCalendar, error) {
	calendar := cal.NewBusinessCalendar()

	switch country {
	case "us":
		calendar.AddHoliday(
			us.NewYear,
			us.MlkDay,
			us.PresidentsDay,
			us.MemorialDay,
			us.Juneteenth,
			us.IndependenceDay,
			us.LaborDay,
			us.ThanksgivingDay,
			us.ChristmasDay,
		)
	case "gb":
		calendar.AddHoliday(gb.Holidays...)
	default:
		return nil, fmt.Errorf("%w: no holiday rules for country %q", domain.ErrUnsupportedType, country)
	}

	return calendar, nil
}

func codeSet(raw []string) (map[domain.BusinessDayCode]bool, error) {
	set := make(map[domain.BusinessDayCode]bool, len(raw))
	for _, r := range raw {
		code, err := domain.ParseCode(strings.TrimSpace(r))
		if err != nil {
			return nil, err
		}
		set[code] = true
	}
	return set, nil
}
