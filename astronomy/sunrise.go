// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides implementations of schedule.SunPosition.
package astronomy

import (
	"fmt"
	"time"

	"cloudeng.io/aviation/schedule"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	geoastro "cloudeng.io/geospatial/astronomy"
)

// ErrNoSunEvent is returned when the sun does not rise or set on
// the requested date at the requested location, ie. during polar day
// or polar night.
var ErrNoSunEvent = errors.New("sun does not rise or set")

// Sun implements schedule.SunPosition using cloudeng.io/geospatial/astronomy.
type Sun struct{}

// SunriseSunset returns the time of sunrise and sunset for the specified
// date and location. The returned times are in UTC.
func (Sun) SunriseSunset(date schedule.Date, at schedule.Coordinate) (rise, set time.Time, err error) {
	year, ok := date.Year()
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("sunrise on %v: %w", date, schedule.ErrYearless)
	}
	if err := at.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	cd := datetime.NewCalendarDate(year, datetime.Month(date.Month()), date.Day())
	rise, set = geoastro.SunRise(cd, at.Latitude, at.Longitude)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%v at %v: %w", date, at, ErrNoSunEvent)
	}
	return rise.UTC(), set.UTC(), nil
}
