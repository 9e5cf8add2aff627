// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cloudeng.io/aviation/schedule"
	"cloudeng.io/logging/ctxlog"
)

type cacheKey struct {
	date schedule.Date
	at   schedule.Coordinate
}

type cacheEntry struct {
	rise, set time.Time
}

// Cache memoizes the results of a schedule.SunPosition per date and
// location. Failures are not cached. It is safe for concurrent use.
type Cache struct {
	sun    schedule.SunPosition
	logger *slog.Logger

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry // GUARDED_BY(mu)
}

// NewCache returns a Cache for sun that logs to the logger
// stored in ctx, if any.
func NewCache(ctx context.Context, sun schedule.SunPosition) *Cache {
	return &Cache{
		sun:     sun,
		logger:  ctxlog.Logger(ctx).With("component", "sun-cache"),
		entries: map[cacheKey]cacheEntry{},
	}
}

// SunriseSunset implements schedule.SunPosition.
func (c *Cache) SunriseSunset(date schedule.Date, at schedule.Coordinate) (rise, set time.Time, err error) {
	key := cacheKey{date: date, at: at}
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return e.rise, e.set, nil
	}
	rise, set, err = c.sun.SunriseSunset(date, at)
	if err != nil {
		c.logger.Warn("sunrise/sunset failed", "date", date.String(), "at", at.String(), "error", err)
		return time.Time{}, time.Time{}, err
	}
	c.logger.Debug("sunrise/sunset cached", "date", date.String(), "at", at.String(), "sunrise", rise, "sunset", set)
	c.mu.Lock()
	c.entries[key] = cacheEntry{rise: rise, set: set}
	c.mu.Unlock()
	return rise, set, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
