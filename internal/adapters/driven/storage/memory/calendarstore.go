package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
)

// Ensure CalendarStore implements the interface.
var _ driven.CalendarStore = (*CalendarStore)(nil)

type yearKey struct {
	region string
	year   int
}

// CalendarStore is an in-memory implementation of driven.CalendarStore.
type CalendarStore struct {
	mu    sync.RWMutex
	years map[yearKey]domain.WorkdayList
}

// NewCalendarStore creates a new in-memory calendar store.
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		years: make(map[yearKey]domain.WorkdayList),
	}
}

// SaveYear stores or replaces the business days of one year.
func (s *CalendarStore) SaveYear(_ context.Context, region string, list domain.WorkdayList) error {
	year := list.Year()
	if err := list.Validate(year); err != nil {
		return fmt.Errorf("save %s/%d: %w", region, year, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.years[yearKey{region, year}] = slices.Clone(list)
	return nil
}

// GetYear retrieves the business days of a year.
func (s *CalendarStore) GetYear(_ context.Context, region string, year int) (domain.WorkdayList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.years[yearKey{region, year}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return slices.Clone(list), nil
}

// DeleteYear removes an imported year.
func (s *CalendarStore) DeleteYear(_ context.Context, region string, year int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := yearKey{region, year}
	if _, ok := s.years[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.years, key)
	return nil
}

// ListYears returns the imported years of a region in ascending order.
func (s *CalendarStore) ListYears(_ context.Context, region string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	years := make([]int, 0)
	for key := range s.years {
		if key.region == region {
			years = append(years, key.year)
		}
	}
	slices.Sort(years)
	return years, nil
}
