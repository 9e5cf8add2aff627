// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
func (d Day) MarshalYAML() (any, error) {
	return d.Tag(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Days may be specified by
// tag, by String form or by an index in the range 0 (Monday) to 6 (Sunday).
func (d *Day) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		index, err := strconv.Atoi(node.Value)
		if err != nil {
			return err
		}
		day, err := DayOf(index)
		if err != nil {
			return err
		}
		*d = day
		return nil
	}
	day, err := ParseDay(node.Value)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	date, err := ParseDate(node.Value)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Time) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using ParseTime.
func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	tm, err := ParseTime(node.Value)
	if err != nil {
		return err
	}
	*t = tm
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (dt DateTime) MarshalYAML() (any, error) {
	return dt.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using ParseDateTime.
func (dt *DateTime) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseDateTime(node.Value)
	if err != nil {
		return err
	}
	*dt = v
	return nil
}
