package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
	"github.com/custodia-labs/bizday/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCalendarProvider     = "calendar.provider"
	keyCalendarRegion       = "calendar.region"
	keyCalendarFetchTimeout = "calendar.fetch_timeout"
	keyAPIHubsBaseURL       = "apihubs.base_url"
	keyAPIHubsRPS           = "apihubs.requests_per_second"
	keyAPIHubsBurst         = "apihubs.burst"
	keyRulesCountry         = "rules.country"
	keyRulesExtraHolidays   = "rules.extra_holidays"
	keyRulesExtraWorkdays   = "rules.extra_workdays"
	keyStorageDataDir       = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Calendar: domain.CalendarSettings{
			Provider:     s.getProvider(defaults.Calendar.Provider),
			Region:       s.getString(keyCalendarRegion, defaults.Calendar.Region),
			FetchTimeout: s.getDuration(keyCalendarFetchTimeout, defaults.Calendar.FetchTimeout),
		},
		APIHubs: domain.APIHubsSettings{
			BaseURL:           s.getString(keyAPIHubsBaseURL, defaults.APIHubs.BaseURL),
			RequestsPerSecond: s.getPositiveInt(keyAPIHubsRPS, defaults.APIHubs.RequestsPerSecond),
			Burst:             s.getPositiveInt(keyAPIHubsBurst, defaults.APIHubs.Burst),
		},
		Rules: domain.RulesSettings{
			Country:       s.getRulesCountry(defaults.Rules.Country),
			ExtraHolidays: s.getCodes(keyRulesExtraHolidays),
			ExtraWorkdays: s.getCodes(keyRulesExtraWorkdays),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyStorageDataDir), // Empty selects ~/.bizday/data
		},
	}

	return settings, nil
}

// Set validates value for key and persists it.
//
// List settings take comma-separated YYYYMMDD dates; an empty value clears
// the list.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	value = strings.TrimSpace(value)

	stored, err := parseSetting(key, value)
	if err != nil {
		return err
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keyCalendarProvider,
		keyCalendarRegion,
		keyCalendarFetchTimeout,
		keyAPIHubsBaseURL,
		keyAPIHubsRPS,
		keyAPIHubsBurst,
		keyRulesCountry,
		keyRulesExtraHolidays,
		keyRulesExtraWorkdays,
		keyStorageDataDir,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// parseSetting converts a raw value to the type stored under key.
func parseSetting(key, value string) (any, error) {
	switch key {
	case keyCalendarProvider:
		provider := domain.CalendarProvider(value)
		if !provider.IsValid() {
			return nil, fmt.Errorf("%w: invalid calendar provider %q", domain.ErrInvalidInput, value)
		}
		return provider.String(), nil

	case keyCalendarRegion:
		if value == "" {
			return nil, fmt.Errorf("%w: region must not be empty", domain.ErrInvalidInput)
		}
		return strings.ToLower(value), nil

	case keyCalendarFetchTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: fetch timeout must be a positive duration such as 10s, got %q",
				domain.ErrInvalidInput, value)
		}
		return d.String(), nil

	case keyAPIHubsBaseURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: base URL must be an http(s) URL, got %q", domain.ErrInvalidInput, value)
		}
		return value, nil

	case keyAPIHubsRPS, keyAPIHubsBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		return n, nil

	case keyRulesCountry:
		country := strings.ToLower(value)
		if !domain.IsRulesCountry(country) {
			return nil, fmt.Errorf("%w: unknown rules country %q (known: %s)",
				domain.ErrInvalidInput, value, strings.Join(domain.RulesCountries(), ", "))
		}
		return country, nil

	case keyRulesExtraHolidays, keyRulesExtraWorkdays:
		return parseCodeList(value)

	case keyStorageDataDir:
		return value, nil

	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// parseCodeList parses comma-separated YYYYMMDD dates.
func parseCodeList(value string) ([]string, error) {
	codes := make([]string, 0)
	if value == "" {
		return codes, nil
	}
	for _, field := range strings.Split(value, ",") {
		code, err := domain.ParseCode(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		codes = append(codes, code.String())
	}
	return codes, nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getProvider(defaultVal domain.CalendarProvider) domain.CalendarProvider {
	provider := domain.CalendarProvider(s.configStore.GetString(keyCalendarProvider))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getRulesCountry(defaultVal string) string {
	country := strings.ToLower(s.configStore.GetString(keyRulesCountry))
	if !domain.IsRulesCountry(country) {
		return defaultVal
	}
	return country
}

// getCodes returns the well-formed dates stored under key, skipping bad entries.
func (s *SettingsService) getCodes(key string) []string {
	var codes []string
	for _, raw := range s.configStore.GetStringSlice(key) {
		if code, err := domain.ParseCode(raw); err == nil {
			codes = append(codes, code.String())
		}
	}
	return codes
}
