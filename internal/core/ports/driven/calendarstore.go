package driven

import (
	"context"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// CalendarStore persists imported business day lists per region and year.
type CalendarStore interface {
	// SaveYear stores or replaces the business days of one year.
	SaveYear(ctx context.Context, region string, list domain.WorkdayList) error

	// GetYear retrieves the business days of a year.
	// Returns domain.ErrNotFound if the year has not been imported.
	GetYear(ctx context.Context, region string, year int) (domain.WorkdayList, error)

	// DeleteYear removes an imported year.
	DeleteYear(ctx context.Context, region string, year int) error

	// ListYears returns the imported years of a region in ascending order.
	ListYears(ctx context.Context, region string) ([]int, error)
}
