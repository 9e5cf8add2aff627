// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"
	"time"

	"cloudeng.io/aviation/astronomy"
	"cloudeng.io/aviation/schedule"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	geoastro "cloudeng.io/geospatial/astronomy"
)

var cupertino = schedule.Coordinate{Latitude: 37.3229978, Longitude: -122.0321823}

func mustDate(t *testing.T, val string) schedule.Date {
	d, err := schedule.ParseDate(val)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSunriseSunset(t *testing.T) {
	rise, set, err := astronomy.Sun{}.SunriseSunset(mustDate(t, "2024-01-01"), cupertino)
	if err != nil {
		t.Fatal(err)
	}
	// 07:22:13 and 17:00:33 PST.
	if got, want := rise, time.Date(2024, 1, 1, 15, 22, 13, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := set, time.Date(2024, 1, 2, 1, 0, 33, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rise.Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	sunrise, _ := schedule.ParseTime("sunrise")
	resolved, err := sunrise.Resolve(mustDate(t, "2024-01-01"), cupertino, astronomy.Sun{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := resolved.String(), "15:22 UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSunriseSunsetCalendar(t *testing.T) {
	zurich := schedule.Coordinate{Latitude: 47.458, Longitude: 8.548}
	for _, val := range []string{"2024-02-29", "2024-06-21", "2025-12-31", "2026-03-01"} {
		date := mustDate(t, val)
		year, _ := date.Year()
		cd := datetime.NewCalendarDate(year, datetime.Month(date.Month()), date.Day())
		for _, at := range []schedule.Coordinate{cupertino, zurich} {
			rise, set, err := astronomy.Sun{}.SunriseSunset(date, at)
			if err != nil {
				t.Errorf("%v at %v: %v", val, at, err)
				continue
			}
			wantRise, wantSet := geoastro.SunRise(cd, at.Latitude, at.Longitude)
			if !rise.Equal(wantRise) || !set.Equal(wantSet) {
				t.Errorf("%v at %v: got %v, %v, want %v, %v", val, at, rise, set, wantRise, wantSet)
			}
			if !rise.Before(set) {
				t.Errorf("%v at %v: sunrise %v is not before sunset %v", val, at, rise, set)
			}
		}
	}
}

func TestSunriseSunsetErrors(t *testing.T) {
	var sun astronomy.Sun
	for _, tc := range []struct {
		date string
		at   schedule.Coordinate
		err  error
	}{
		{"01-01", cupertino, schedule.ErrYearless},
		{"2024-01-01", schedule.Coordinate{Latitude: 91}, schedule.ErrInvalidValue},
		{"2024-01-01", schedule.Coordinate{Longitude: -181}, schedule.ErrInvalidValue},
		{"2024-06-21", schedule.Coordinate{Latitude: 89.9}, astronomy.ErrNoSunEvent},
		{"2024-12-21", schedule.Coordinate{Latitude: 89.9}, astronomy.ErrNoSunEvent},
	} {
		_, _, err := sun.SunriseSunset(mustDate(t, tc.date), tc.at)
		if !errors.Is(err, tc.err) {
			t.Errorf("%v at %v: got %v, want %v", tc.date, tc.at, err, tc.err)
		}
	}
}
