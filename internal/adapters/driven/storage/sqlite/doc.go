// Package sqlite provides the SQLite-backed driven.CalendarStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Imported calendars are stored per region and year, one row
// per business day, so a machine can resolve business days offline through
// the "store" calendar provider.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.bizday/data/calendar.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite locking in WAL
// mode and replaces a year inside a single transaction.
package sqlite
