// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"cloudeng.io/aviation/cyclic"
	"cloudeng.io/errors"
)

var (
	// ErrInvalidValue is returned for unparsable or out of range input.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNotComparable is returned when a year-less date is compared
	// with one that has a year.
	ErrNotComparable = errors.New("not comparable")
	// ErrUnsortable is returned when ordering or containment is requested
	// for a value that has no total order, such as a category day or an
	// unresolved time.
	ErrUnsortable = cyclic.ErrUnsortable
	// ErrYearless is returned when an operation requires a date with a year.
	ErrYearless = errors.New("year-less date")
	// ErrTooManyEvents is returned when a time is given two events.
	ErrTooManyEvents = errors.New("too many events")
	// ErrMissingPrecedence is returned when a time has both a clock value
	// and an event but no precedence to choose between them.
	ErrMissingPrecedence = errors.New("missing precedence")
)
