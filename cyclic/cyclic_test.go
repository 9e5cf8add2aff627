// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cyclic_test

import (
	"cmp"
	"fmt"
	"testing"

	"cloudeng.io/aviation/cyclic"
	"cloudeng.io/errors"
)

// hours of a day, -1 is a wildcard and values >= 100 are unsortable.
var hours = cyclic.Ordering[int]{
	Compare: func(a, b int) (int, error) {
		return cmp.Compare(a, b), nil
	},
	Sortable: func(v int) bool { return v < 100 },
	Wildcard: func(v int) bool { return v == -1 },
}

func TestContains(t *testing.T) {
	for _, tc := range []struct {
		first, last int
		in, out     []int
	}{
		{8, 17, []int{8, 12, 17}, []int{0, 7, 18, 23}},
		{22, 4, []int{22, 23, 0, 3, 4}, []int{5, 12, 21}},
		{10, 10, []int{10}, []int{0, 9, 11, 23}},
		{0, 23, []int{0, 11, 23}, nil},
		{23, 0, []int{23, 0}, []int{1, 12, 22}},
		{-1, 4, []int{0, 5, 23}, nil},
		{4, -1, []int{0, 5, 23}, nil},
	} {
		r := cyclic.New(tc.first, tc.last)
		for _, v := range tc.in {
			ok, err := cyclic.Contains(hours, r, v)
			if err != nil {
				t.Errorf("%v: %v: %v", r, v, err)
			}
			if !ok {
				t.Errorf("%v: %v should be contained", r, v)
			}
		}
		for _, v := range tc.out {
			ok, err := cyclic.Contains(hours, r, v)
			if err != nil {
				t.Errorf("%v: %v: %v", r, v, err)
			}
			if ok {
				t.Errorf("%v: %v should not be contained", r, v)
			}
		}
	}

	ok, err := cyclic.Contains(hours, cyclic.New(3, 5), -1)
	if err != nil || !ok {
		t.Errorf("wildcard value: got %v, %v", ok, err)
	}
	// A wildcard dominates unsortable values.
	ok, err = cyclic.Contains(hours, cyclic.New(-1, 100), 200)
	if err != nil || !ok {
		t.Errorf("wildcard with unsortable: got %v, %v", ok, err)
	}
}

func TestUnsortable(t *testing.T) {
	for _, tc := range []struct {
		r cyclic.Range[int]
		v int
	}{
		{cyclic.New(1, 5), 100},
		{cyclic.New(100, 5), 3},
		{cyclic.New(1, 100), 3},
		{cyclic.Point(100), 100},
	} {
		if _, err := cyclic.Contains(hours, tc.r, tc.v); !errors.Is(err, cyclic.ErrUnsortable) {
			t.Errorf("%v: %v: got %v, want %v", tc.r, tc.v, err, cyclic.ErrUnsortable)
		}
		if _, err := cyclic.Within(hours, tc.r, tc.v); !errors.Is(err, cyclic.ErrUnsortable) {
			t.Errorf("%v: %v: got %v, want %v", tc.r, tc.v, err, cyclic.ErrUnsortable)
		}
	}
}

func TestWithin(t *testing.T) {
	for _, tc := range []struct {
		r    cyclic.Range[int]
		v    int
		want bool
	}{
		{cyclic.New(8, 17), 8, true},
		{cyclic.New(8, 17), 17, true},
		{cyclic.New(8, 17), 18, false},
		{cyclic.New(22, 4), 23, false},
		{cyclic.New(22, 4), 2, false},
		{cyclic.Point(5), 5, true},
	} {
		got, err := cyclic.Within(hours, tc.r, tc.v)
		if err != nil {
			t.Errorf("%v: %v", tc.r, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: %v: got %v, want %v", tc.r, tc.v, got, tc.want)
		}
	}
}

var errIncomparable = fmt.Errorf("incomparable")

func TestCompareErrors(t *testing.T) {
	ord := cyclic.Ordering[string]{
		Compare: func(a, b string) (int, error) {
			if len(a) != len(b) {
				return 0, errIncomparable
			}
			return cmp.Compare(a, b), nil
		},
	}
	if _, err := cyclic.Contains(ord, cyclic.New("aa", "bbb"), "cc"); !errors.Is(err, errIncomparable) {
		t.Errorf("got %v, want %v", err, errIncomparable)
	}
	if _, err := cyclic.Contains(ord, cyclic.New("aa", "cc"), "bbb"); !errors.Is(err, errIncomparable) {
		t.Errorf("got %v, want %v", err, errIncomparable)
	}
	ok, err := cyclic.Contains(ord, cyclic.New("xx", "bb"), "aa")
	if err != nil || !ok {
		t.Errorf("got %v, %v", ok, err)
	}
	if got, want := cyclic.New("a", "b").String(), "a..b"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
