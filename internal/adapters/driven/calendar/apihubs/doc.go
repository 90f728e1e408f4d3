// Package apihubs provides a driven.CalendarSource backed by the apihubs
// holiday API (https://www.apihubs.cn/#/holiday).
//
// One request fetches every business day of a year for mainland China,
// including weekend compensation workdays. Requests are throttled with a
// token bucket and back off after HTTP 429 responses.
package apihubs
