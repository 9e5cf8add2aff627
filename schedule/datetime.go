// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DateTime pairs a Date with a Time.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime returns a DateTime for the given date and time.
func NewDateTime(date Date, t Time) DateTime {
	return DateTime{date: date, time: t}
}

// DateTimeOf returns the DateTime for t in UTC.
func DateTimeOf(t time.Time) DateTime {
	t = t.UTC()
	return DateTime{date: DateOf(t), time: TimeOf(t)}
}

// ParseDateTime parses the String form of a DateTime, ie. a date as
// accepted by ParseDate followed by a time as accepted by ParseTime.
func ParseDateTime(val string) (DateTime, error) {
	ds, ts, ok := strings.Cut(strings.TrimSpace(val), " ")
	if !ok {
		return DateTime{}, fmt.Errorf("%w: date time %q, expected '<date> <time>'", ErrInvalidValue, val)
	}
	date, err := ParseDate(ds)
	if err != nil {
		return DateTime{}, err
	}
	t, err := ParseTime(ts)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: t}, nil
}

func (dt DateTime) Date() Date {
	return dt.date
}

func (dt DateTime) Time() Time {
	return dt.time
}

// Resolve resolves the time of dt on the date of dt.
func (dt DateTime) Resolve(at Coordinate, sun SunPosition) (DateTime, error) {
	t, err := dt.time.Resolve(dt.date, at, sun)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: dt.date, time: t}, nil
}

// Equal returns true if both the dates and times of dt and o are equal.
func (dt DateTime) Equal(o DateTime) bool {
	return dt.date == o.date && dt.time.Equal(o.time)
}

func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}
