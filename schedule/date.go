// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/aviation/cyclic"
	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// yearless is the year used for dates without a year, it is a leap
// year so that Feb 29 is a valid year-less date.
const yearless = 0

const yearlessMarker = "XXXX"

// Date represents a calendar date which may lack a year, in which case
// it refers to the same month and day of every year.
type Date struct {
	year  int
	month time.Month
	day   int
}

// daysInMonth returns the number of days in month for year. Year zero
// is a leap year.
func daysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// DateRange is a range of dates. Ranges of year-less dates may wrap
// the end of the year.
type DateRange = cyclic.Range[Date]

func validateDate(year int, month time.Month, day int) error {
	if year != yearless && (year < 1 || year > 9999) {
		return fmt.Errorf("%w: year %d not in 1-9999", ErrInvalidValue, year)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d not in 1-12", ErrInvalidValue, month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return fmt.Errorf("%w: day %d not valid for %v", ErrInvalidValue, day, month)
	}
	return nil
}

// NewDate returns a new Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year == yearless {
		return Date{}, fmt.Errorf("%w: year is required", ErrInvalidValue)
	}
	if err := validateDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// NewYearlessDate returns a new year-less Date for the given month and day.
func NewYearlessDate(month time.Month, day int) (Date, error) {
	if err := validateDate(yearless, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: yearless, month: month, day: day}, nil
}

// DateOf returns the Date for the given time.Time in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

var dateRe = regexp.MustCompile(`^(?:([0-9]{4}|XXXX)-)?([0-9]{2})-([0-9]{2})$`)

// ParseDate parses dates in formats 'YYYY-MM-DD', 'XXXX-MM-DD' or 'MM-DD',
// the latter two of which result in a year-less date.
func ParseDate(val string) (Date, error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(val))
	if m == nil {
		return Date{}, fmt.Errorf("%w: date %q, expected YYYY-MM-DD, XXXX-MM-DD or MM-DD", ErrInvalidValue, val)
	}
	year := yearless
	if len(m[1]) > 0 && m[1] != yearlessMarker {
		year, _ = strconv.Atoi(m[1])
		if year == yearless {
			return Date{}, fmt.Errorf("%w: date %q, year 0000 is not allowed", ErrInvalidValue, val)
		}
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if err := validateDate(year, time.Month(month), day); err != nil {
		return Date{}, fmt.Errorf("date %q: %w", val, err)
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

// Year returns the year of d and false if d is year-less.
func (d Date) Year() (int, bool) {
	return d.year, d.year != yearless
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// IsYearless returns true if d has no year.
func (d Date) IsYearless() bool {
	return d.year == yearless
}

// Yearless returns a year-less copy of d.
func (d Date) Yearless() Date {
	d.year = yearless
	return d
}

// IsComparableTo returns true if d and o are either both year-less or
// both have a year.
func (d Date) IsComparableTo(o Date) bool {
	return d.IsYearless() == o.IsYearless()
}

// Compare returns -1, 0 or +1 if d is before, on, or after o. It returns
// ErrNotComparable if only one of d and o is year-less.
func (d Date) Compare(o Date) (int, error) {
	if !d.IsComparableTo(o) {
		return 0, fmt.Errorf("%v and %v: %w", d, o, ErrNotComparable)
	}
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c, nil
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c, nil
	}
	return cmp.Compare(d.day, o.day), nil
}

// At returns a new Date with the year, month and day replaced by those
// that are non-zero. If wrap is true then the month is advanced if the
// new day is before the current day and, independently, the year is
// advanced if the new month is before the current month. Year-less
// dates remain year-less unless a year is specified. An error is
// returned if the resulting date does not exist.
func (d Date) At(year int, month time.Month, day int, wrap bool) (Date, error) {
	if year == 0 && month == 0 && day == 0 {
		return d, nil
	}
	if month < 0 || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d not in 1-12", ErrInvalidValue, month)
	}
	ny, nm, nd := d.year, d.month, d.day
	if year != 0 {
		ny = year
	}
	if month != 0 {
		nm = month
	}
	if day != 0 {
		nd = day
	}
	if wrap && month != 0 && month < d.month && ny != yearless {
		ny++
	}
	if wrap && day != 0 && day < d.day {
		nm++
	}
	if nm == 13 {
		nm = time.January
		if ny != yearless {
			ny++
		}
	}
	if err := validateDate(ny, nm, nd); err != nil {
		return Date{}, err
	}
	return Date{year: ny, month: nm, day: nd}, nil
}

// Successor returns the following day, year-less dates wrap from
// Dec 31 to Jan 01.
func (d Date) Successor() Date {
	if d.day < daysInMonth(d.year, d.month) {
		d.day++
		return d
	}
	d.day = 1
	if d.month == time.December {
		d.month = time.January
		if d.year != yearless {
			d.year++
		}
		return d
	}
	d.month++
	return d
}

// Predecessor returns the preceding day, year-less dates wrap from
// Jan 01 to Dec 31.
func (d Date) Predecessor() Date {
	if d.day > 1 {
		d.day--
		return d
	}
	if d.month == time.January {
		d.month = time.December
		if d.year != yearless {
			d.year--
		}
	} else {
		d.month--
	}
	d.day = daysInMonth(d.year, d.month)
	return d
}

// ToDay returns the day of the week for d.
func (d Date) ToDay() (Day, error) {
	if d.IsYearless() {
		return 0, fmt.Errorf("no day of the week for %v: %w", d, ErrYearless)
	}
	jd := julian.CalendarGregorianToJD(d.year, int(d.month), float64(d.day))
	// julian.DayOfWeek counts from Sunday as 0.
	return DayOfWeekday(time.Weekday(julian.DayOfWeek(jd))), nil
}

var dateOrdering = cyclic.Ordering[Date]{
	Compare: Date.Compare,
}

// CoveredBy returns true if d lies within r. If r is year-less it
// may wrap the end of the year and d is compared without its year.
// If r has years and d does not, then d is compared against the
// year-less form of r. If both have years then r does not wrap.
// The ends of r must be comparable with each other.
func (d Date) CoveredBy(r DateRange) (bool, error) {
	if !r.First.IsComparableTo(r.Last) {
		return false, fmt.Errorf("range %v: %w", r, ErrNotComparable)
	}
	switch {
	case r.First.IsYearless():
		return cyclic.Contains(dateOrdering, r, d.Yearless())
	case d.IsYearless():
		return cyclic.Contains(dateOrdering, cyclic.New(r.First.Yearless(), r.Last.Yearless()), d)
	}
	return cyclic.Within(dateOrdering, r, d)
}

// CoveredByDays returns true if the day of the week of d lies within r.
// A range including AnyDay covers every date, including year-less ones,
// otherwise a year-less d has no day of the week and the error returned
// matches both ErrYearless and ErrUnsortable.
func (d Date) CoveredByDays(r DayRange) (bool, error) {
	if r.First.IsWildcard() || r.Last.IsWildcard() {
		return true, nil
	}
	day, err := d.ToDay()
	if err != nil {
		return false, fmt.Errorf("%w: %w", err, ErrUnsortable)
	}
	return day.CoveredBy(r)
}

// Format returns d formatted according to layout, which may contain
// %Y (the year, or XXXX for year-less dates), %m and %d (two digit month
// and day) and %% for a literal percent sign.
func (d Date) Format(layout string) string {
	var out strings.Builder
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i == len(layout)-1 {
			out.WriteByte(c)
			continue
		}
		i++
		switch layout[i] {
		case 'Y':
			if d.IsYearless() {
				out.WriteString(yearlessMarker)
			} else {
				fmt.Fprintf(&out, "%04d", d.year)
			}
		case 'm':
			fmt.Fprintf(&out, "%02d", d.month)
		case 'd':
			fmt.Fprintf(&out, "%02d", d.day)
		case '%':
			out.WriteByte('%')
		default:
			out.WriteByte('%')
			out.WriteByte(layout[i])
		}
	}
	return out.String()
}

// String returns d in the format 'YYYY-MM-DD' or 'XXXX-MM-DD'.
func (d Date) String() string {
	return d.Format("%Y-%m-%d")
}
