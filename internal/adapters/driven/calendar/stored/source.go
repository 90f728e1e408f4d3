// Package stored provides a driven.CalendarSource serving calendars
// previously imported into a driven.CalendarStore.
package stored

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CalendarSource = (*Source)(nil)

// Name identifies the source in logs and errors.
const Name = "store"

// Source reads business days of one region from a CalendarStore.
type Source struct {
	domain.Codec

	store  driven.CalendarStore
	region string
}

// New creates a source reading region from store.
func New(store driven.CalendarStore, region string) *Source {
	return &Source{
		store:  store,
		region: region,
	}
}

// Name returns "store".
func (s *Source) Name() string {
	return Name
}

// Workdays returns the imported business days of year.
// A year that was never imported is domain.ErrDataUnavailable.
func (s *Source) Workdays(ctx context.Context, year int) (domain.WorkdayList, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	list, err := s.store.GetYear(ctx, s.region, year)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d is not imported for region %s (run: bizday calendar import %d)",
			domain.ErrDataUnavailable, year, s.region, year)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s/%d: %w", domain.ErrDataUnavailable, s.region, year, err)
	}
	return list, nil
}
