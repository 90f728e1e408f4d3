package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
	"github.com/custodia-labs/bizday/internal/core/ports/driving"
	"github.com/custodia-labs/bizday/internal/logger"
)

// Ensure CalendarService implements the interface.
var _ driving.CalendarService = (*CalendarService)(nil)

// CalendarService imports calendars from a provider into the local store,
// so later resolutions can run offline through the store provider.
type CalendarService struct {
	source       driven.CalendarSource
	store        driven.CalendarStore
	region       string
	fetchTimeout time.Duration
}

// NewCalendarService creates a calendar service that imports from source into
// store under region. Non-positive timeouts keep the default.
func NewCalendarService(
	source driven.CalendarSource,
	store driven.CalendarStore,
	region string,
	fetchTimeout time.Duration,
) *CalendarService {
	if fetchTimeout <= 0 {
		fetchTimeout = domain.DefaultFetchTimeout
	}
	return &CalendarService{
		source:       source,
		store:        store,
		region:       region,
		fetchTimeout: fetchTimeout,
	}
}

// Import fetches year from the source and stores it, replacing any
// previous import of that year.
func (s *CalendarService) Import(ctx context.Context, year int) (int, error) {
	if s.source == nil || s.store == nil {
		return 0, domain.ErrNotImplemented
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	logger.Debug("Importing %d for region %s from %s", year, s.region, s.source.Name())
	list, err := s.source.Workdays(fetchCtx, year)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: fetching %d from %s: %w", domain.ErrDataUnavailable, year, s.source.Name(), err)
	}

	// Unlike the resolver cache, an import must hold exactly the requested year.
	if err := list.Validate(year); err != nil {
		return 0, fmt.Errorf("%w: %s returned unusable data for %d: %w",
			domain.ErrDataUnavailable, s.source.Name(), year, err)
	}

	if err := s.store.SaveYear(ctx, s.region, list); err != nil {
		return 0, fmt.Errorf("storing %d: %w", year, err)
	}

	logger.Info("Imported %d business days for %s/%d", len(list), s.region, year)
	return len(list), nil
}

// Years lists the imported years of the region.
func (s *CalendarService) Years(ctx context.Context) ([]int, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.ListYears(ctx, s.region)
}

// Show returns the business days of an imported year.
func (s *CalendarService) Show(ctx context.Context, year int) (domain.WorkdayList, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.GetYear(ctx, s.region, year)
}

// Remove deletes an imported year.
func (s *CalendarService) Remove(ctx context.Context, year int) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if err := s.store.DeleteYear(ctx, s.region, year); err != nil {
		return err
	}
	logger.Info("Removed imported calendar %s/%d", s.region, year)
	return nil
}
