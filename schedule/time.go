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
)

// Event represents an astronomical event that a Time may refer to.
type Event uint8

const (
	NoEvent Event = iota
	Sunrise
	Sunset
)

var eventNames = []string{"", "sunrise", "sunset"}

// ParseEvent parses "sunrise" or "sunset".
func ParseEvent(val string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "sunrise":
		return Sunrise, nil
	case "sunset":
		return Sunset, nil
	}
	return NoEvent, fmt.Errorf("%w: unrecognised event %q", ErrInvalidValue, val)
}

func (e Event) String() string {
	if int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", e)
	}
	return eventNames[e]
}

// Precedence determines whether the earlier or later of a clock time
// and an event is used, ie. "whichever comes first" or "whichever comes last".
type Precedence uint8

const (
	NoPrecedence Precedence = iota
	First
	Last
)

var precedenceNames = []string{"", "first", "last"}

// ParsePrecedence parses "first" or "last".
func ParsePrecedence(val string) (Precedence, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "first":
		return First, nil
	case "last":
		return Last, nil
	}
	return NoPrecedence, fmt.Errorf("%w: unrecognised precedence %q", ErrInvalidValue, val)
}

func (p Precedence) String() string {
	if int(p) >= len(precedenceNames) {
		return fmt.Sprintf("Precedence(%d)", p)
	}
	return precedenceNames[p]
}

const (
	minutesPerDay = 24 * 60
	endOfDay      = minutesPerDay
	noClock       = -1
)

// Keep may be passed to Time.At to retain the current hour or minute.
const Keep = -1

// Time represents a UTC time of day, an astronomical event (sunrise or sunset)
// offset by a number of minutes, or both together with a precedence that
// selects the earlier or later of the two. A time that refers to an event
// is unresolved until Resolve is called for a specific date and location.
// 24:00 represents the end of the day and sorts after 23:59.
type Time struct {
	clock      int // minutes since midnight or noClock
	event      Event
	delta      int
	precedence Precedence
}

// TimeRange is a, possibly wrapping, range of times.
type TimeRange = cyclic.Range[Time]

func newTime(clock int, event Event, delta int, precedence Precedence) (Time, error) {
	if event == NoEvent {
		if delta != 0 {
			return Time{}, fmt.Errorf("%w: offset of %d minutes requires an event", ErrInvalidValue, delta)
		}
		return Time{clock: clock}, nil
	}
	if clock == noClock {
		return Time{clock: noClock, event: event, delta: delta}, nil
	}
	if precedence == NoPrecedence {
		return Time{}, fmt.Errorf("%s or %s: %w", formatClock(clock), event, ErrMissingPrecedence)
	}
	return Time{clock: clock, event: event, delta: delta, precedence: precedence}, nil
}

// NewClock returns a Time for the given UTC hour and minute. An hour of 24
// is allowed with a minute of 0 to denote the end of the day.
func NewClock(hour, minute int) (Time, error) {
	if err := validateClock(hour, minute); err != nil {
		return Time{}, err
	}
	return Time{clock: hour*60 + minute}, nil
}

// TimeOf returns the Time of day of t in UTC.
func TimeOf(t time.Time) Time {
	t = t.UTC()
	return Time{clock: t.Hour()*60 + t.Minute()}
}

func validateClock(hour, minute int) error {
	if hour < 0 || hour > 24 {
		return fmt.Errorf("%w: hour %d not in 0-24", ErrInvalidValue, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute %d not in 0-59", ErrInvalidValue, minute)
	}
	if hour == 24 && minute != 0 {
		return fmt.Errorf("%w: 24:%02d, only 24:00 is allowed", ErrInvalidValue, minute)
	}
	return nil
}

var (
	clockRe  = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})\s*((?i:utc|z)|[+-][0-9]{2}:?[0-9]{2})?$`)
	offsetRe = regexp.MustCompile(`^((?i:utc|z)|[+-][0-9]{2}:?[0-9]{2})$`)
	eventRe  = regexp.MustCompile(`^(?i:(sunrise|sunset))(?:([+-])([0-9]+)min)?$`)
)

func parseOffset(val string) (int, error) {
	if len(val) == 0 || strings.EqualFold(val, "utc") || strings.EqualFold(val, "z") {
		return 0, nil
	}
	digits := strings.ReplaceAll(val[1:], ":", "")
	h, _ := strconv.Atoi(digits[:2])
	m, _ := strconv.Atoi(digits[2:])
	if h > 14 || m > 59 {
		return 0, fmt.Errorf("%w: utc offset %q", ErrInvalidValue, val)
	}
	offset := h*60 + m
	if val[0] == '-' {
		offset = -offset
	}
	return offset, nil
}

// parseClock parses 'HH:MM' with an optional 'UTC', 'Z' or numeric utc
// offset and returns the number of minutes since midnight UTC.
func parseClock(val string) (int, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(val))
	if m == nil {
		return 0, fmt.Errorf("%w: time %q, expected 'HH:MM [UTC|+HH:MM]'", ErrInvalidValue, val)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if err := validateClock(hour, minute); err != nil {
		return 0, fmt.Errorf("time %q: %w", val, err)
	}
	offset, err := parseOffset(m[3])
	if err != nil {
		return 0, err
	}
	clock := hour*60 + minute
	if offset == 0 {
		return clock, nil
	}
	return ((clock-offset)%minutesPerDay + minutesPerDay) % minutesPerDay, nil
}

func parseEventDelta(val string) (Event, int, bool) {
	m := eventRe.FindStringSubmatch(val)
	if m == nil {
		return NoEvent, 0, false
	}
	event, _ := ParseEvent(m[1])
	if len(m[3]) == 0 {
		return event, 0, true
	}
	delta, err := strconv.Atoi(m[3])
	if err != nil {
		return NoEvent, 0, false
	}
	if m[2] == "-" {
		delta = -delta
	}
	return event, delta, true
}

type timeOptions struct {
	or         Event
	plus       int
	minus      int
	precedence Precedence
}

// TimeOption represents an option to NewTime.
type TimeOption func(o *timeOptions)

// Or specifies an event to use in addition to a clock time.
func Or(event Event) TimeOption {
	return func(o *timeOptions) {
		o.or = event
	}
}

// Plus specifies a number of minutes to add to the event.
func Plus(minutes int) TimeOption {
	return func(o *timeOptions) {
		o.plus = minutes
	}
}

// Minus specifies a number of minutes to subtract from the event.
func Minus(minutes int) TimeOption {
	return func(o *timeOptions) {
		o.minus = minutes
	}
}

// WhicheverComes specifies the precedence between a clock time and an
// event. It is ignored unless both are present.
func WhicheverComes(p Precedence) TimeOption {
	return func(o *timeOptions) {
		o.precedence = p
	}
}

// NewTime creates a Time from value, which is either a clock time of the
// form 'HH:MM' with an optional 'UTC' or numeric utc offset, or the name of
// an event ("sunrise" or "sunset"), optionally offset as in "sunset-15min".
// Options may be used to add an event to a clock time, to offset the event
// and to specify the precedence.
func NewTime(value string, opts ...TimeOption) (Time, error) {
	var o timeOptions
	for _, fn := range opts {
		fn(&o)
	}
	clock, event, delta := noClock, NoEvent, o.plus-o.minus
	if ev, d, ok := parseEventDelta(strings.TrimSpace(value)); ok {
		event = ev
		delta += d
	} else {
		c, err := parseClock(value)
		if err != nil {
			return Time{}, err
		}
		clock = c
	}
	if o.or != NoEvent {
		if event != NoEvent {
			return Time{}, fmt.Errorf("%v and %v: %w", event, o.or, ErrTooManyEvents)
		}
		event = o.or
	}
	precedence := o.precedence
	if clock == noClock || event == NoEvent {
		precedence = NoPrecedence
	}
	return newTime(clock, event, delta, precedence)
}

// ParseTime parses the String form of a Time, eg. '09:00 UTC',
// 'sunset-30min' or '09:00 UTC or sunrise+15min whichever comes last'.
// The clock time may be specified with a numeric utc offset instead of 'UTC'.
func ParseTime(val string) (Time, error) {
	tokens := strings.Fields(val)
	invalid := func() (Time, error) {
		return Time{}, fmt.Errorf("%w: time %q", ErrInvalidValue, val)
	}
	i, n := 0, len(tokens)
	clock, event, delta, precedence := noClock, NoEvent, 0, NoPrecedence
	if i < n && len(tokens[i]) > 0 && tokens[i][0] >= '0' && tokens[i][0] <= '9' {
		cv := tokens[i]
		i++
		if i < n && offsetRe.MatchString(tokens[i]) {
			cv += " " + tokens[i]
			i++
		}
		c, err := parseClock(cv)
		if err != nil {
			return Time{}, err
		}
		clock = c
	}
	or := false
	if i < n && tokens[i] == "or" {
		or = true
		i++
	}
	if i < n {
		if ev, d, ok := parseEventDelta(tokens[i]); ok {
			event, delta = ev, d
			i++
		}
	}
	if n-i == 3 && tokens[i] == "whichever" && tokens[i+1] == "comes" {
		p, err := ParsePrecedence(tokens[i+2])
		if err != nil {
			return Time{}, err
		}
		precedence = p
		i += 3
	}
	both := clock != noClock && event != NoEvent
	switch {
	case i != n, clock == noClock && event == NoEvent:
		return invalid()
	case or != both:
		return invalid()
	case precedence != NoPrecedence && !both:
		return invalid()
	}
	return newTime(clock, event, delta, precedence)
}

// IsResolved returns true if t does not refer to an event.
func (t Time) IsResolved() bool {
	return t.event == NoEvent
}

// IsSortable returns true if t can be ordered, ie. it is resolved.
func (t Time) IsSortable() bool {
	return t.IsResolved()
}

// IsEndOfDay returns true if t is 24:00.
func (t Time) IsEndOfDay() bool {
	return t.clock == endOfDay
}

// Clock returns the hour and minute of the clock time of t and false if
// t has no clock time.
func (t Time) Clock() (hour, minute int, ok bool) {
	if t.clock == noClock {
		return 0, 0, false
	}
	return t.clock / 60, t.clock % 60, true
}

// Event returns the event that t refers to, if any.
func (t Time) Event() Event {
	return t.event
}

// Delta returns the offset, in minutes, applied to the event.
func (t Time) Delta() int {
	return t.delta
}

// Precedence returns the precedence between the clock time and the event.
func (t Time) Precedence() Precedence {
	return t.precedence
}

// At returns a new Time with the hour and/or minute of the clock time
// replaced; Keep retains the current value. If wrap is true and the new
// minute is less than the current minute then the hour is advanced.
// 24:00 is retained as the end of day, other hours wrap at 24. An hour
// of 24 may only be given with a minute of 0 and is never advanced. At
// returns ErrUnsortable if t has no clock time.
func (t Time) At(hour, minute int, wrap bool) (Time, error) {
	if t.clock == noClock {
		return Time{}, fmt.Errorf("%v must be resolved first: %w", t, ErrUnsortable)
	}
	if hour == Keep && minute == Keep {
		return t, nil
	}
	if hour != Keep && (hour < 0 || hour > 24) {
		return Time{}, fmt.Errorf("%w: hour %d not in 0-24", ErrInvalidValue, hour)
	}
	if minute != Keep && (minute < 0 || minute > 59) {
		return Time{}, fmt.Errorf("%w: minute %d not in 0-59", ErrInvalidValue, minute)
	}
	nh, nm, _ := t.Clock()
	om := nm
	if hour != Keep {
		nh = hour
	}
	if minute != Keep {
		nm = minute
	}
	if hour != Keep {
		if err := validateClock(nh, nm); err != nil {
			return Time{}, err
		}
	}
	if wrap && minute != Keep && minute < om && hour != 24 {
		nh++
	}
	if nh != 24 || nm != 0 {
		nh %= 24
	}
	t.clock = nh*60 + nm
	return t, nil
}

// Resolve returns a Time with no reference to an event by calculating the
// time of the event on the specified date and location using sun. The
// delta is added to the event time and if t also has a clock time then
// the earlier or later of the two is chosen according to t's precedence.
// Resolving a resolved time returns it unchanged.
func (t Time) Resolve(on Date, at Coordinate, sun SunPosition) (Time, error) {
	if t.IsResolved() {
		return t, nil
	}
	if on.IsYearless() {
		return Time{}, fmt.Errorf("resolving %v on %v: %w", t, on, ErrYearless)
	}
	if err := at.Validate(); err != nil {
		return Time{}, fmt.Errorf("resolving %v at %v: %w", t, at, err)
	}
	rise, set, err := sun.SunriseSunset(on, at)
	if err != nil {
		return Time{}, fmt.Errorf("resolving %v on %v at %v: %w", t, on, at, err)
	}
	when := rise
	if t.event == Sunset {
		when = set
	}
	when = when.UTC().Add(time.Duration(t.delta) * time.Minute).Truncate(time.Minute)
	resolved := when.Hour()*60 + when.Minute()
	switch {
	case t.clock == noClock:
	case t.precedence == First:
		resolved = min(resolved, t.clock)
	case t.precedence == Last:
		resolved = max(resolved, t.clock)
	}
	return Time{clock: resolved}, nil
}

// Compare returns -1, 0 or +1 if t is before, equal to, or after o. It
// returns ErrUnsortable if either time is unresolved.
func (t Time) Compare(o Time) (int, error) {
	if !t.IsResolved() || !o.IsResolved() {
		return 0, fmt.Errorf("%v and %v: %w", t, o, ErrUnsortable)
	}
	return cmp.Compare(t.clock, o.clock), nil
}

var timeOrdering = cyclic.Ordering[Time]{
	Compare:  Time.Compare,
	Sortable: Time.IsSortable,
}

// CoveredBy returns true if t lies within r, allowing for ranges that
// wrap midnight, eg. 22:00 to 04:00. It returns ErrUnsortable if t or
// either end of r is unresolved.
func (t Time) CoveredBy(r TimeRange) (bool, error) {
	return cyclic.Contains(timeOrdering, r, t)
}

// Equal returns true if t and o have the same String form.
func (t Time) Equal(o Time) bool {
	return t.String() == o.String()
}

func formatClock(clock int) string {
	return fmt.Sprintf("%02d:%02d", clock/60, clock%60)
}

func (t Time) formatEvent() string {
	if t.event == NoEvent {
		return ""
	}
	switch {
	case t.delta > 0:
		return fmt.Sprintf("%v+%dmin", t.event, t.delta)
	case t.delta < 0:
		return fmt.Sprintf("%v-%dmin", t.event, -t.delta)
	}
	return t.event.String()
}

// Format returns t formatted according to layout which may contain:
//
//	%R the clock time as HH:MM
//	%z the zone of the clock time, ie. UTC
//	%o "or" if t has both a clock time and an event
//	%E the event and its offset, eg. sunset-15min
//	%P the precedence, eg. "whichever comes first"
//	%% a literal percent sign
//
// Placeholders that do not apply to t are replaced by empty strings.
func (t Time) Format(layout string) string {
	hasClock := t.clock != noClock
	var out strings.Builder
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i == len(layout)-1 {
			out.WriteByte(c)
			continue
		}
		i++
		switch layout[i] {
		case 'R':
			if hasClock {
				out.WriteString(formatClock(t.clock))
			}
		case 'z':
			if hasClock {
				out.WriteString("UTC")
			}
		case 'o':
			if hasClock && t.event != NoEvent {
				out.WriteString("or")
			}
		case 'E':
			out.WriteString(t.formatEvent())
		case 'P':
			if t.precedence != NoPrecedence {
				out.WriteString("whichever comes ")
				out.WriteString(t.precedence.String())
			}
		case '%':
			out.WriteByte('%')
		default:
			out.WriteByte('%')
			out.WriteByte(layout[i])
		}
	}
	return out.String()
}

// String returns the canonical form of t, eg. '09:00 UTC', 'sunrise+15min'
// or '09:00 UTC or sunset whichever comes first'.
func (t Time) String() string {
	return strings.Join(strings.Fields(t.Format("%R %z %o %E %P")), " ")
}
