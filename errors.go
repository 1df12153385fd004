// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when a chart receives no usable rows or
// labels. Charts fail fast; no partial output is written.
var ErrEmptyInput = errors.New("empty input: no usable rows or labels")

// TimestampParseError reports a timestamp string that does not match
// the configured time layout. Row is the zero-based row index in the
// input table.
type TimestampParseError struct {
	Row    int
	Value  string
	Layout string
	Err    error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse timestamp %q with layout %q: %v",
		e.Row, e.Value, e.Layout, e.Err)
}

func (e *TimestampParseError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an unrecognized option value, such as an
// unknown standardization policy, time unit, or color scheme. It is
// raised before any computation happens.
type ConfigurationError struct {
	Option string
	Value  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	s := fmt.Sprintf("invalid %s %q", e.Option, e.Value)
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

// MissingColumnError reports a required column that is absent from
// the input table.
type MissingColumnError struct {
	Column string
	Have   []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Have) == 0 {
		return fmt.Sprintf("missing column %q in empty table", e.Column)
	}
	return fmt.Sprintf("missing column %q (table has %s)",
		e.Column, strings.Join(e.Have, ", "))
}
