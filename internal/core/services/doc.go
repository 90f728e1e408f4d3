// Package services implements the driving port interfaces.
//
// WorkdayService resolves business days over a WorkdayCache, which holds the
// business days of exactly one year fetched from a driven.CalendarSource.
// CalendarService imports years into a driven.CalendarStore for offline use,
// and SettingsService maps the configuration file onto domain.Settings.
//
// Services are pure Go with no CGO or external dependencies.
package services
