// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/aviation/cyclic"
)

// Day represents either a day of the week, a category of day such as
// a holiday, or any day at all. Only the days of the week are sortable.
type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Workday
	DayPrecedingWorkday
	DayFollowingWorkday
	Holiday
	DayPrecedingHoliday
	DayFollowingHoliday
	AnyDay
)

const daysInWeek = 7

var dayTags = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
	"workday",
	"day_preceding_workday",
	"day_following_workday",
	"holiday",
	"day_preceding_holiday",
	"day_following_holiday",
	"any",
}

var dayFromTag = func() map[string]Day {
	m := make(map[string]Day, len(dayTags))
	for i, tag := range dayTags {
		m[tag] = Day(i)
	}
	return m
}()

// DayRange is a, possibly wrapping, range of days.
type DayRange = cyclic.Range[Day]

// DayOf returns the day of the week for index, where 0 is Monday
// and 6 is Sunday.
func DayOf(index int) (Day, error) {
	if index < 0 || index >= daysInWeek {
		return 0, fmt.Errorf("%w: day index %d not in 0-6", ErrInvalidValue, index)
	}
	return Day(index), nil
}

// DayOfWeekday returns the Day for the given time.Weekday.
func DayOfWeekday(wd time.Weekday) Day {
	if wd == time.Sunday {
		return Sunday
	}
	return Day(wd - 1)
}

// ParseDay parses a day from its tag, eg. "day_preceding_holiday", or
// its String form, eg. "day preceding holiday". Case is ignored.
func ParseDay(val string) (Day, error) {
	tag := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(val)), " ", "_")
	d, ok := dayFromTag[tag]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognised day %q", ErrInvalidValue, val)
	}
	return d, nil
}

func (d Day) valid() bool {
	return d <= AnyDay
}

// Tag returns the symbolic tag for d, eg. "day_following_workday".
func (d Day) Tag() string {
	if !d.valid() {
		return fmt.Sprintf("Day(%d)", d)
	}
	return dayTags[d]
}

// String returns the tag for d with underscores replaced by spaces.
func (d Day) String() string {
	return strings.ReplaceAll(d.Tag(), "_", " ")
}

// IsWildcard returns true for AnyDay.
func (d Day) IsWildcard() bool {
	return d == AnyDay
}

// IsSortable returns true for the days of the week.
func (d Day) IsSortable() bool {
	return d < daysInWeek
}

// Weekday returns the time.Weekday for d, it returns false if d is not
// a day of the week.
func (d Day) Weekday() (time.Weekday, bool) {
	if !d.IsSortable() {
		return 0, false
	}
	return time.Weekday((d + 1) % daysInWeek), true
}

// Successor returns the following day of the week, Sunday is followed
// by Monday.
func (d Day) Successor() (Day, error) {
	if !d.IsSortable() {
		return 0, fmt.Errorf("%v has no successor: %w", d, ErrUnsortable)
	}
	return (d + 1) % daysInWeek, nil
}

// Predecessor returns the preceding day of the week, Monday is preceded
// by Sunday.
func (d Day) Predecessor() (Day, error) {
	if !d.IsSortable() {
		return 0, fmt.Errorf("%v has no predecessor: %w", d, ErrUnsortable)
	}
	return (d + daysInWeek - 1) % daysInWeek, nil
}

// Compare orders days as Monday through Sunday, followed by the
// categories in declaration order and finally AnyDay. The order is
// intended for constructing and sorting ranges, containment uses
// CoveredBy.
func (d Day) Compare(o Day) int {
	return cmp.Compare(d, o)
}

var dayOrdering = cyclic.Ordering[Day]{
	Compare: func(a, b Day) (int, error) {
		return a.Compare(b), nil
	},
	Sortable: Day.IsSortable,
	Wildcard: Day.IsWildcard,
}

// CoveredBy returns true if d lies within r. AnyDay as d or as either end
// of r always results in true. Otherwise, category days result in
// ErrUnsortable and days of the week are tested against the week
// allowing for ranges that wrap, eg. Friday to Monday.
func (d Day) CoveredBy(r DayRange) (bool, error) {
	return cyclic.Contains(dayOrdering, r, d)
}
