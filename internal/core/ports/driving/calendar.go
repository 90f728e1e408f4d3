package driving

import (
	"context"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// CalendarService manages calendars imported for offline use.
type CalendarService interface {
	// Import fetches a year from the remote provider and stores it.
	// Returns the number of business days stored.
	Import(ctx context.Context, year int) (int, error)

	// Years lists the imported years.
	Years(ctx context.Context) ([]int, error)

	// Show returns the business days of an imported year.
	Show(ctx context.Context, year int) (domain.WorkdayList, error)

	// Remove deletes an imported year.
	Remove(ctx context.Context, year int) error
}
