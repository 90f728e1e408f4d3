package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bizday/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bizday/internal/core/domain"
)

func settingsFor(provider domain.CalendarProvider) domain.Settings {
	s := domain.DefaultSettings()
	s.Calendar.Provider = provider
	return s
}

func TestNewSource(t *testing.T) {
	store := memory.NewCalendarStore()

	for _, provider := range domain.AllCalendarProviders() {
		t.Run(provider.String(), func(t *testing.T) {
			source, err := NewSource(settingsFor(provider), store)

			require.NoError(t, err)
			assert.Equal(t, provider.String(), source.Name())
		})
	}
}

func TestNewSource_Errors(t *testing.T) {
	_, err := NewSource(settingsFor("carrier-pigeon"), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = NewSource(settingsFor(domain.CalendarProviderStore), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := settingsFor(domain.CalendarProviderRules)
	bad.Rules.Country = "atlantis"
	_, err = NewSource(bad, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestNewImportSource(t *testing.T) {
	tests := []struct {
		provider domain.CalendarProvider
		want     string
	}{
		{domain.CalendarProviderAPIHubs, "apihubs"},
		{domain.CalendarProviderRules, "rules"},
		{domain.CalendarProviderStore, "apihubs"},
	}

	for _, tt := range tests {
		t.Run(tt.provider.String(), func(t *testing.T) {
			source, err := NewImportSource(settingsFor(tt.provider))

			require.NoError(t, err)
			assert.Equal(t, tt.want, source.Name())
		})
	}
}
