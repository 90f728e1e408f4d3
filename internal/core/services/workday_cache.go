package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/bizday/internal/core/domain"
	"github.com/custodia-labs/bizday/internal/core/ports/driven"
	"github.com/custodia-labs/bizday/internal/logger"
)

// WorkdayCache holds the business days of exactly one year.
//
// A refresh replaces the resident list wholesale by publishing a new,
// fully built list through an atomic pointer. Readers see either the old
// list or the new one, never a partial list. Concurrent refreshes of the
// same year may both fetch; the last one to finish wins.
type WorkdayCache struct {
	source       driven.CalendarSource
	fetchTimeout time.Duration

	current atomic.Pointer[domain.WorkdayList]
	fetches atomic.Int64
}

// CacheOption configures a WorkdayCache.
type CacheOption func(*WorkdayCache)

// WithFetchTimeout bounds each fetch from the calendar source.
// Non-positive values keep the default.
func WithFetchTimeout(d time.Duration) CacheOption {
	return func(c *WorkdayCache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// NewWorkdayCache creates an empty cache backed by source.
func NewWorkdayCache(source driven.CalendarSource, opts ...CacheOption) *WorkdayCache {
	c := &WorkdayCache{
		source:       source,
		fetchTimeout: domain.DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the calendar source backing the cache.
func (c *WorkdayCache) Source() driven.CalendarSource {
	return c.source
}

// Snapshot returns the resident list, which may belong to any year.
// Returns nil before the first successful refresh.
func (c *WorkdayCache) Snapshot() domain.WorkdayList {
	list := c.current.Load()
	if list == nil {
		return nil
	}
	return *list
}

// Fetches returns the number of successful refreshes.
func (c *WorkdayCache) Fetches() int {
	return int(c.fetches.Load())
}

// Refresh fetches year from the calendar source and makes it the resident list.
//
// On failure the previous list stays resident and the returned error wraps
// domain.ErrDataUnavailable. The returned list is not guaranteed to belong to
// year if the source misbehaves; callers must check its Year.
func (c *WorkdayCache) Refresh(ctx context.Context, year int) (domain.WorkdayList, error) {
	if c.source == nil {
		return nil, domain.ErrNotImplemented
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	start := time.Now()
	logger.Debug("Fetching business days for %d from %s", year, c.source.Name())
	list, err := c.source.Workdays(fetchCtx, year)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fetching %d from %s: %w", domain.ErrDataUnavailable, year, c.source.Name(), err)
	}

	if err := list.Validate(list.Year()); err != nil {
		return nil, fmt.Errorf("%w: %s returned unusable data for %d: %w",
			domain.ErrDataUnavailable, c.source.Name(), year, err)
	}
	if list.Year() != year {
		logger.Warn("%s returned business days for %d when asked for %d", c.source.Name(), list.Year(), year)
	}

	// Publish a private copy so a source reusing its slice cannot mutate the cache.
	published := make(domain.WorkdayList, len(list))
	copy(published, list)
	c.current.Store(&published)
	c.fetches.Add(1)

	logger.Since(start, "Cached %d business days for %d", len(published), published.Year())
	return published, nil
}
