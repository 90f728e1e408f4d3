package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driving"
	"github.com/custodia-labs/bizday/internal/logger"
)

// Ensure WorkdayService implements the interface.
var _ driving.WorkdayService = (*WorkdayService)(nil)

// maxResolveAttempts bounds the search-and-refresh cycles of one resolution.
// Crossing a year boundary from a cold cache needs all three.
const maxResolveAttempts = 3

// maxCarriedYears bounds how many year boundaries one NextWorkday may cross,
// so a huge count cannot trigger a fetch for every year that follows.
const maxCarriedYears = 10

// WorkdayService resolves business days over a single-year WorkdayCache.
type WorkdayService struct {
	cache *WorkdayCache
	now   func() time.Time
}

// WorkdayOption configures a WorkdayService.
type WorkdayOption func(*WorkdayService)

// WithClock sets the clock that decides the current year.
func WithClock(now func() time.Time) WorkdayOption {
	return func(s *WorkdayService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewWorkdayService creates a resolver over cache.
func NewWorkdayService(cache *WorkdayCache, opts ...WorkdayOption) *WorkdayService {
	s := &WorkdayService{
		cache: cache,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecentWorkday returns the nearest business day on or after date.
//
// found is false when the answer lies beyond the current year and
// considerNextYear is not set.
func (s *WorkdayService) RecentWorkday(
	ctx context.Context,
	date time.Time,
	considerNextYear bool,
) (domain.BusinessDayCode, bool, error) {
	code, _, found, err := s.recent(ctx, date, considerNextYear)
	return code, found, err
}

// recent resolves the nearest business day and returns the list it was found
// in, so callers keep working on that list even if the cache moves on.
func (s *WorkdayService) recent(
	ctx context.Context,
	date time.Time,
	considerNextYear bool,
) (domain.BusinessDayCode, domain.WorkdayList, bool, error) {
	if s.cache == nil || s.cache.Source() == nil {
		return "", nil, false, domain.ErrNotImplemented
	}

	target := s.cache.Source().DateToCode(date)
	year := date.Year()
	list := s.cache.Snapshot()

	for attempt := 1; ; attempt++ {
		if list.Year() == year {
			if i, ok := list.Search(target); ok {
				return list[i], list, true, nil
			}
			logger.Debug("No business day on or after %s in %d, moving to %d", target, year, year+1)
			year++
		}

		if !considerNextYear && year > s.now().Year() {
			logger.Debug("Not looking into %d without considerNextYear", year)
			return "", nil, false, nil
		}

		if attempt >= maxResolveAttempts {
			break
		}

		var err error
		list, err = s.cache.Refresh(ctx, year)
		if err != nil {
			return "", nil, false, err
		}
	}

	return "", nil, false, fmt.Errorf("%w: no business day on or after %s after %d attempts",
		domain.ErrResolutionFailed, target, maxResolveAttempts)
}

// NextWorkday returns the business day count positions after date.
//
// When date is not a business day, the nearest later business day counts as
// the first position. A count of 0 returns date itself if it is a business
// day, otherwise the nearest later one.
func (s *WorkdayService) NextWorkday(
	ctx context.Context,
	date time.Time,
	count int,
	considerNextYear bool,
) (time.Time, bool, error) {
	if count < 0 {
		return time.Time{}, false, fmt.Errorf("%w: count must not be negative, got %d", domain.ErrInvalidInput, count)
	}
	if s.cache == nil || s.cache.Source() == nil {
		return time.Time{}, false, domain.ErrNotImplemented
	}
	source := s.cache.Source()

	from := date
	carried := false
	years := 0
	for {
		if err := ctx.Err(); err != nil {
			return time.Time{}, false, err
		}

		anchor, list, found, err := s.recent(ctx, from, considerNextYear)
		if err != nil || !found {
			return time.Time{}, found, err
		}

		// The anchor consumes one step when it lies after the start, and
		// always when continuing from a previous year.
		if carried || anchor != source.DateToCode(from) {
			count--
		}
		if count < 0 {
			count = 0
		}

		pos := list.IndexOf(anchor)
		remaining := len(list) - pos - 1
		if remaining >= count {
			return source.CodeToDate(list[pos+count]), true, nil
		}

		if !considerNextYear {
			logger.Debug("Business day %d positions after %s is beyond %d", count, anchor, list.Year())
			return time.Time{}, false, nil
		}

		years++
		if years > maxCarriedYears {
			return time.Time{}, false, fmt.Errorf("%w: %d business days after %s crosses more than %d years",
				domain.ErrResolutionFailed, count, source.DateToCode(date), maxCarriedYears)
		}

		count -= remaining
		from = time.Date(list.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		carried = true
		logger.Debug("Continuing from %s with %d business days left", from.Format(time.DateOnly), count)
	}
}

// IsWorkday reports whether date is a business day.
// A date beyond the permitted horizon is reported as not a business day.
func (s *WorkdayService) IsWorkday(ctx context.Context, date time.Time, considerNextYear bool) (bool, error) {
	code, found, err := s.RecentWorkday(ctx, date, considerNextYear)
	if err != nil || !found {
		return false, err
	}
	return code == s.cache.Source().DateToCode(date), nil
}
