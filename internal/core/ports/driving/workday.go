package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// WorkdayService resolves business days against the configured calendar.
//
// A false found result means the answer lies in a year after the current
// one and considerNextYear was not set. It is not an error.
type WorkdayService interface {
	// RecentWorkday returns the nearest business day on or after date.
	RecentWorkday(ctx context.Context, date time.Time, considerNextYear bool) (code domain.BusinessDayCode, found bool, err error)

	// NextWorkday returns the business day count positions after date.
	NextWorkday(ctx context.Context, date time.Time, count int, considerNextYear bool) (next time.Time, found bool, err error)

	// IsWorkday reports whether date itself is a business day.
	IsWorkday(ctx context.Context, date time.Time, considerNextYear bool) (bool, error)
}
