package calendar

import (
	"fmt"

	"github.com/custodia-labs/bizday/internal/adapters/driven/calendar/apihubs"
	"github.com/custodia-labs/bizday/internal/adapters/driven/calendar/rules"
	"github.com/custodia-labs/bizday/internal/adapters/driven/calendar/stored"
	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
)

// NewSource returns the calendar source for settings.Calendar.Provider.
// store is only consulted by the store provider.
func NewSource(settings domain.Settings, store driven.CalendarStore) (driven.CalendarSource, error) {
	switch settings.Calendar.Provider {
	case domain.CalendarProviderAPIHubs:
		return apihubs.New(apihubs.ConfigFromSettings(settings.APIHubs)), nil
	case domain.CalendarProviderRules:
		source, err := rules.New(rules.ConfigFromSettings(settings.Rules))
		if err != nil {
			return nil, err
		}
		return source, nil
	case domain.CalendarProviderStore:
		if store == nil {
			return nil, fmt.Errorf("%w: store provider needs a calendar store", domain.ErrInvalidInput)
		}
		return stored.New(store, settings.Calendar.Region), nil
	default:
		return nil, fmt.Errorf("%w: calendar provider %q", domain.ErrUnsupportedType, settings.Calendar.Provider)
	}
}

// NewImportSource returns the source that calendar imports read from.
// Importing from the store into itself is meaningless, so the store
// provider imports from apihubs.
func NewImportSource(settings domain.Settings) (driven.CalendarSource, error) {
	if settings.Calendar.Provider == domain.CalendarProviderStore {
		settings.Calendar.Provider = domain.CalendarProviderAPIHubs
	}
	return NewSource(settings, nil)
}
