package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// CalendarSource supplies the business days of a region, one year at a time.
// Implementations typically embed domain.Codec for the conversions.
type CalendarSource interface {
	// Name identifies the source in logs and output.
	Name() string

	// Workdays returns the business days of year in ascending order.
	// Fails with an error wrapping domain.ErrDataUnavailable when the
	// source cannot be reached, returns malformed data, or has no entries.
	Workdays(ctx context.Context, year int) (domain.WorkdayList, error)

	// DateToCode converts a date to its business day code.
	DateToCode(t time.Time) domain.BusinessDayCode

	// CodeToDate converts a business day code back to its date.
	CodeToDate(c domain.BusinessDayCode) time.Time
}
