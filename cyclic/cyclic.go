// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cyclic provides a range type and containment tests for values
// whose ordering wraps around, such as the days of the week, the days
// of a year or the minutes of a day. A range whose first element sorts
// after its last element is interpreted as wrapping past the end of the
// ordering back to its start, so that "Oct 01 - Mar 31" contains January
// and "22:00 - 04:00" contains midnight.
package cyclic

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrUnsortable is returned when a containment test involves a value
// that has no total order.
var ErrUnsortable = errors.New("unsortable")

// Range represents an inclusive range of values. First may sort after
// Last in which case the range wraps.
type Range[T any] struct {
	First T `yaml:"first"`
	Last  T `yaml:"last"`
}

// New returns a Range from first to last.
func New[T any](first, last T) Range[T] {
	return Range[T]{First: first, Last: last}
}

// Point returns a Range containing the single value v.
func Point[T any](v T) Range[T] {
	return Range[T]{First: v, Last: v}
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v..%v", r.First, r.Last)
}

// Ordering describes how values of type T are ordered. Compare must
// return a negative, zero or positive value in the manner of cmp.Compare,
// or an error if the two values cannot be compared. Sortable reports
// whether a value participates in the ordering at all and Wildcard
// whether it matches every other value. Either of Sortable or Wildcard
// may be nil, meaning that all values are sortable and none are wildcards.
type Ordering[T any] struct {
	Compare  func(a, b T) (int, error)
	Sortable func(v T) bool
	Wildcard func(v T) bool
}

func (o Ordering[T]) check(r Range[T], v T) (wildcard bool, err error) {
	if o.Wildcard != nil && (o.Wildcard(v) || o.Wildcard(r.First) || o.Wildcard(r.Last)) {
		return true, nil
	}
	if o.Sortable == nil {
		return false, nil
	}
	for _, x := range []T{v, r.First, r.Last} {
		if !o.Sortable(x) {
			return false, fmt.Errorf("%v: %w", x, ErrUnsortable)
		}
	}
	return false, nil
}

// Contains reports whether v lies within r where r may wrap. A wildcard
// in v or either end of r always matches, any unsortable value results in
// ErrUnsortable. A range whose ends compare as equal contains only values
// equal to them. Otherwise, if First <= Last, v is contained when
// First <= v <= Last and if First > Last, v is contained when v >= First
// or v <= Last.
func Contains[T any](o Ordering[T], r Range[T], v T) (bool, error) {
	if wildcard, err := o.check(r, v); wildcard || err != nil {
		return wildcard, err
	}
	span, err := o.Compare(r.First, r.Last)
	if err != nil {
		return false, err
	}
	afterFirst, err := o.Compare(v, r.First)
	if err != nil {
		return false, err
	}
	if span == 0 {
		return afterFirst == 0, nil
	}
	beforeLast, err := o.Compare(v, r.Last)
	if err != nil {
		return false, err
	}
	if span < 0 {
		return afterFirst >= 0 && beforeLast <= 0, nil
	}
	return afterFirst >= 0 || beforeLast <= 0, nil
}

// Within reports whether v lies within r without wrapping, ie. a range
// whose First sorts after its Last contains nothing. Wildcards and
// unsortable values are treated as per Contains.
func Within[T any](o Ordering[T], r Range[T], v T) (bool, error) {
	if wildcard, err := o.check(r, v); wildcard || err != nil {
		return wildcard, err
	}
	afterFirst, err := o.Compare(v, r.First)
	if err != nil {
		return false, err
	}
	beforeLast, err := o.Compare(v, r.Last)
	if err != nil {
		return false, err
	}
	return afterFirst >= 0 && beforeLast <= 0, nil
}
