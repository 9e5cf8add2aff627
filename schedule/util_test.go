// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule_test

import (
	"fmt"
	"time"

	"cloudeng.io/aviation/schedule"
)

func mustDate(val string) schedule.Date {
	d, err := schedule.ParseDate(val)
	if err != nil {
		panic(err)
	}
	return d
}

func mustTime(val string) schedule.Time {
	t, err := schedule.ParseTime(val)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDay(val string) schedule.Day {
	d, err := schedule.ParseDay(val)
	if err != nil {
		panic(err)
	}
	return d
}

func dateRange(first, last string) schedule.DateRange {
	return schedule.DateRange{First: mustDate(first), Last: mustDate(last)}
}

func timeRange(first, last string) schedule.TimeRange {
	return schedule.TimeRange{First: mustTime(first), Last: mustTime(last)}
}

func dayRange(first, last string) schedule.DayRange {
	return schedule.DayRange{First: mustDay(first), Last: mustDay(last)}
}

// fixedSun returns a SunPosition that reports the given sunrise and sunset
// times, as HH:MM UTC, on every date and counts the number of calls made
// to it.
func fixedSun(rise, set string, calls *int) schedule.SunPositionFunc {
	return func(date schedule.Date, _ schedule.Coordinate) (time.Time, time.Time, error) {
		if calls != nil {
			*calls++
		}
		year, ok := date.Year()
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("year-less date: %v", date)
		}
		at := func(hm string) time.Time {
			t, err := time.Parse("15:04:05", hm)
			if err != nil {
				panic(err)
			}
			return time.Date(year, date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
		}
		return at(rise), at(set), nil
	}
}

var zurich = schedule.Coordinate{Latitude: 47.458, Longitude: 8.548}
