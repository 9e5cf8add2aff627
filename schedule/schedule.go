// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides the value types used to express the operating
// hours of aeronautical facilities: symbolic days, calendar dates that may
// lack a year, times of day that may refer to sunrise or sunset and pairs
// of dates and times. Each type supports testing for containment within
// a range of values of the same type where the range may wrap, eg.
// "Oct 01 - Mar 31", "Friday - Monday" or "22:00 - 04:00".
//
// All values are immutable. Times that refer to sunrise or sunset must be
// resolved against a concrete date and location, using a SunPosition,
// before they can be ordered.
package schedule

import (
	"fmt"
	"math"
	"time"
)

// Coordinate represents a geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Validate returns ErrInvalidValue if the latitude is not within
// [-90, 90] or the longitude is not within [-180, 180].
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidValue, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidValue, c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// SunPosition returns the UTC times of sunrise and sunset on the given
// date at the given location. Implementations should be free of side
// effects, their errors are returned verbatim by Time.Resolve.
type SunPosition interface {
	SunriseSunset(date Date, at Coordinate) (sunrise, sunset time.Time, err error)
}

// SunPositionFunc allows a function to be used as a SunPosition.
type SunPositionFunc func(date Date, at Coordinate) (sunrise, sunset time.Time, err error)

// SunriseSunset implements SunPosition.
func (fn SunPositionFunc) SunriseSunset(date Date, at Coordinate) (sunrise, sunset time.Time, err error) {
	return fn(date, at)
}
