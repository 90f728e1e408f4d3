// Package calendar builds the driven.CalendarSource selected by settings.
//
// Providers live in sub-packages:
//   - apihubs: remote holiday API with rate limiting
//   - rules: offline weekend and national holiday rules
//   - stored: calendars imported into the local database
package calendar
