package domain

import "time"

const unknownDescription = "Unknown"

// CalendarProvider identifies where business days come from.
type CalendarProvider string

// Available calendar providers.
const (
	// CalendarProviderAPIHubs fetches business days from the apihubs holiday API.
	CalendarProviderAPIHubs CalendarProvider = "apihubs"

	// CalendarProviderRules computes business days offline from weekend and holiday rules.
	CalendarProviderRules CalendarProvider = "rules"

	// CalendarProviderStore serves years previously imported into the local database.
	CalendarProviderStore CalendarProvider = "store"
)

// IsValid returns true if the provider is recognised.
func (p CalendarProvider) IsValid() bool {
	switch p {
	case CalendarProviderAPIHubs, CalendarProviderRules, CalendarProviderStore:
		return true
	default:
		return false
	}
}

// IsRemote returns true if the provider needs network access.
func (p CalendarProvider) IsRemote() bool {
	return p == CalendarProviderAPIHubs
}

// String returns the string representation.
func (p CalendarProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p CalendarProvider) Description() string {
	switch p {
	case CalendarProviderAPIHubs:
		return "apihubs (remote holiday API)"
	case CalendarProviderRules:
		return "Rules (offline weekend and holiday rules)"
	case CalendarProviderStore:
		return "Store (imported calendars)"
	default:
		return unknownDescription
	}
}

// AllCalendarProviders returns all available calendar providers.
func AllCalendarProviders() []CalendarProvider {
	return []CalendarProvider{
		CalendarProviderAPIHubs,
		CalendarProviderRules,
		CalendarProviderStore,
	}
}

// RulesCountries returns the national holiday sets known to the rules provider.
func RulesCountries() []string {
	return []string{"gb", "us"}
}

// IsRulesCountry reports whether country names a known holiday set.
func IsRulesCountry(country string) bool {
	for _, c := range RulesCountries() {
		if c == country {
			return true
		}
	}
	return false
}

// CalendarSettings holds resolver-facing calendar configuration.
type CalendarSettings struct {
	// Provider selects the calendar source.
	Provider CalendarProvider

	// Region labels imported calendars, e.g. "cn".
	Region string

	// FetchTimeout bounds a single year fetch.
	FetchTimeout time.Duration
}

// APIHubsSettings holds configuration for the apihubs provider.
type APIHubsSettings struct {
	// BaseURL is the holiday endpoint.
	BaseURL string

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond int

	// Burst is the maximum burst size.
	Burst int
}

// RulesSettings holds configuration for the offline rules provider.
type RulesSettings struct {
	// Country selects the national holiday set ("us" or "gb").
	Country string

	// ExtraHolidays are YYYYMMDD dates treated as non-business days.
	ExtraHolidays []string

	// ExtraWorkdays are YYYYMMDD dates treated as business days,
	// typically weekend compensation workdays.
	ExtraWorkdays []string
}

// StorageSettings holds local storage configuration.
type StorageSettings struct {
	// DataDir is the directory holding the calendar database.
	// Empty means ~/.bizday/data.
	DataDir string
}

// Settings holds all application settings.
type Settings struct {
	Calendar CalendarSettings
	APIHubs  APIHubsSettings
	Rules    RulesSettings
	Storage  StorageSettings
}

// Default settings values.
const (
	DefaultRegion            = "cn"
	DefaultFetchTimeout      = 10 * time.Second
	DefaultAPIHubsBaseURL    = "https://api.apihubs.cn/holiday/get"
	DefaultRequestsPerSecond = 2
	DefaultBurst             = 2
	DefaultRulesCountry      = "us"
)

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Calendar: CalendarSettings{
			Provider:     CalendarProviderAPIHubs,
			Region:       DefaultRegion,
			FetchTimeout: DefaultFetchTimeout,
		},
		APIHubs: APIHubsSettings{
			BaseURL:           DefaultAPIHubsBaseURL,
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
		Rules: RulesSettings{
			Country: DefaultRulesCountry,
		},
	}
}
