// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Timesheet represents the hours of operation of a facility as an
// optional range of dates, an optional range of days and an optional
// range of times. A DateTime is covered by a Timesheet if it is covered
// by every range that is specified. Ranges of days that include
// category days, such as holidays, cannot be evaluated without a holiday
// calendar and hence Covers returns ErrUnsortable for them unless the
// range also includes AnyDay.
type Timesheet struct {
	Dates *DateRange `yaml:"dates,omitempty"`
	Days  *DayRange  `yaml:"days,omitempty"`
	Times *TimeRange `yaml:"times,omitempty"`
}

func (ts Timesheet) String() string {
	var parts []string
	if ts.Dates != nil {
		parts = append(parts, ts.Dates.String())
	}
	if ts.Days != nil {
		parts = append(parts, ts.Days.String())
	}
	if ts.Times != nil {
		parts = append(parts, ts.Times.String())
	}
	return strings.Join(parts, ", ")
}

// Validate returns all of the problems found with ts.
func (ts Timesheet) Validate() error {
	errs := &errors.M{}
	if ts.Dates == nil && ts.Days == nil && ts.Times == nil {
		errs.Append(fmt.Errorf("%w: timesheet has no dates, days or times", ErrInvalidValue))
	}
	if r := ts.Dates; r != nil && !r.First.IsComparableTo(r.Last) {
		errs.Append(fmt.Errorf("dates %v: %w", r, ErrNotComparable))
	}
	if r := ts.Days; r != nil {
		wildcard := r.First.IsWildcard() || r.Last.IsWildcard()
		sortable := r.First.IsSortable() && r.Last.IsSortable()
		if !wildcard && !sortable && r.First != r.Last {
			errs.Append(fmt.Errorf("days %v: a category day cannot bound a range: %w", r, ErrUnsortable))
		}
	}
	return errs.Err()
}

// Covers returns true if dt is covered by ts. Times are resolved on the
// date of dt at the given location using sun.
func (ts Timesheet) Covers(dt DateTime, at Coordinate, sun SunPosition) (bool, error) {
	if r := ts.Dates; r != nil {
		if ok, err := dt.Date().CoveredBy(*r); !ok || err != nil {
			return false, err
		}
	}
	if r := ts.Days; r != nil {
		if ok, err := dt.Date().CoveredByDays(*r); !ok || err != nil {
			return false, err
		}
	}
	r := ts.Times
	if r == nil {
		return true, nil
	}
	var resolved [3]Time
	for i, t := range []Time{r.First, r.Last, dt.Time()} {
		rt, err := t.Resolve(dt.Date(), at, sun)
		if err != nil {
			return false, err
		}
		resolved[i] = rt
	}
	return resolved[2].CoveredBy(TimeRange{First: resolved[0], Last: resolved[1]})
}

// Timesheets represents a set of timesheets, any one of which may cover
// a given DateTime.
type Timesheets []Timesheet

// Covers returns true if any of the timesheets covers dt. Timesheets that
// cannot be evaluated do not prevent the remainder from being tested,
// their errors are returned only if no timesheet covers dt.
func (tss Timesheets) Covers(dt DateTime, at Coordinate, sun SunPosition) (bool, error) {
	errs := &errors.M{}
	for i, ts := range tss {
		ok, err := ts.Covers(dt, at, sun)
		if err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("timesheet %d", i), err))
			continue
		}
		if ok {
			return true, nil
		}
	}
	return false, errs.Err()
}

// Validate returns all of the problems found with all of the timesheets.
func (tss Timesheets) Validate() error {
	errs := &errors.M{}
	for i, ts := range tss {
		if err := ts.Validate(); err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("timesheet %d", i), err))
		}
	}
	return errs.Err()
}

// ParseTimesheets parses a YAML list of timesheets and validates them, eg:
//
//   - dates: {first: 10-01, last: 03-31}
//     days: {first: monday, last: friday}
//     times: {first: "sunrise", last: "20:00 UTC"}
//   - days: {first: saturday, last: sunday}
//     times: {first: "09:00 UTC", last: "12:00 UTC"}
func ParseTimesheets(data []byte) (Timesheets, error) {
	var tss Timesheets
	if err := yaml.Unmarshal(data, &tss); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if err := tss.Validate(); err != nil {
		return nil, err
	}
	return tss, nil
}
