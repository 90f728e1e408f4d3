package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
)

// calendarStore implements driven.CalendarStore.
type calendarStore struct {
	store *Store
}

var _ driven.CalendarStore = (*calendarStore)(nil)

// SaveYear stores or replaces the business days of one year.
func (s *calendarStore) SaveYear(ctx context.Context, region string, list domain.WorkdayList) error {
	year := list.Year()
	if err := list.Validate(year); err != nil {
		return fmt.Errorf("saving %s/%d: %w", region, year, err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO calendar_years (region, year, day_count, imported_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(region, year) DO UPDATE SET
			day_count = excluded.day_count,
			imported_at = excluded.imported_at
	`, region, year, len(list), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving calendar year: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM calendar_days WHERE region = ? AND year = ?", region, year); err != nil {
		return fmt.Errorf("clearing calendar days: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO calendar_days (region, year, code) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, code := range list {
		if _, err := stmt.ExecContext(ctx, region, year, string(code)); err != nil {
			return fmt.Errorf("saving business day %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing calendar year: %w", err)
	}
	return nil
}

// GetYear retrieves the business days of a year.
func (s *calendarStore) GetYear(ctx context.Context, region string, year int) (domain.WorkdayList, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT code FROM calendar_days
		WHERE region = ? AND year = ?
		ORDER BY code
	`, region, year)
	if err != nil {
		return nil, fmt.Errorf("querying calendar days: %w", err)
	}
	defer rows.Close()

	var list domain.WorkdayList
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning business day: %w", err)
		}
		list = append(list, domain.BusinessDayCode(code))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar days: %w", err)
	}

	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return list, nil
}

// DeleteYear removes an imported year and its business days.
func (s *calendarStore) DeleteYear(ctx context.Context, region string, year int) error {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM calendar_years WHERE region = ? AND year = ?", region, year)
	if err != nil {
		return fmt.Errorf("deleting calendar year: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListYears returns the imported years of a region in ascending order.
func (s *calendarStore) ListYears(ctx context.Context, region string) ([]int, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT year FROM calendar_years WHERE region = ? ORDER BY year", region)
	if err != nil {
		return nil, fmt.Errorf("querying calendar years: %w", err)
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scanning calendar year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar years: %w", err)
	}
	return years, nil
}
