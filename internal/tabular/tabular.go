// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabular maps caller-named columns of a go-gg table to the
// typed slices chart packages work with. All accessors return fresh
// slices, so charts can reorder and rewrite freely without touching
// the caller's table.
package tabular

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

// ByTime is a sort.Interface wrapper for time columns. go-gg sorts
// columns that implement sort.Interface; a bare []time.Time does not.
type ByTime []time.Time

func (s ByTime) Len() int           { return len(s) }
func (s ByTime) Less(i, j int) bool { return s[i].Before(s[j]) }
func (s ByTime) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Require fails with a MissingColumnError for the first of cols that
// is not present in t, or with ErrEmptyInput if t has no rows.
func Require(t *table.Table, cols ...string) error {
	if t == nil || t.Len() == 0 {
		return vizkit.ErrEmptyInput
	}
	for _, col := range cols {
		if t.Column(col) == nil {
			return &vizkit.MissingColumnError{Column: col, Have: t.Columns()}
		}
	}
	return nil
}

// Strings returns the column as a fresh []string, formatting
// non-string elements with fmt.Sprint.
func Strings(t *table.Table, col string) ([]string, error) {
	v := t.Column(col)
	if v == nil {
		return nil, &vizkit.MissingColumnError{Column: col, Have: t.Columns()}
	}
	if s, ok := v.([]string); ok {
		return append([]string(nil), s...), nil
	}
	rv := reflect.ValueOf(v)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out, nil
}

// Floats returns the column as a fresh []float64. Numeric columns
// are converted; string columns are parsed, failing with the
// offending row.
func Floats(t *table.Table, col string) ([]float64, error) {
	v := t.Column(col)
	if v == nil {
		return nil, &vizkit.MissingColumnError{Column: col, Have: t.Columns()}
	}
	switch s := v.(type) {
	case []float64:
		return append([]float64(nil), s...), nil
	case []string:
		out := make([]float64, len(s))
		for i, raw := range s {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: cannot parse %q as a number", i, col, raw)
			}
			out[i] = f
		}
		return out, nil
	}
	var out []float64
	slice.Convert(&out, v)
	return out, nil
}

// Times returns the column as a fresh []time.Time. Native time
// columns (either []time.Time or ByTime) pass through; string
// columns are parsed with the Go reference layout, failing with a
// TimestampParseError naming the row.
func Times(t *table.Table, col, layout string) ([]time.Time, error) {
	v := t.Column(col)
	if v == nil {
		return nil, &vizkit.MissingColumnError{Column: col, Have: t.Columns()}
	}
	switch s := v.(type) {
	case []time.Time:
		return append([]time.Time(nil), s...), nil
	case ByTime:
		return append([]time.Time(nil), s...), nil
	case []string:
		out := make([]time.Time, len(s))
		for i, raw := range s {
			ts, err := time.Parse(layout, raw)
			if err != nil {
				return nil, &vizkit.TimestampParseError{Row: i, Value: raw, Layout: layout, Err: err}
			}
			out[i] = ts
		}
		return out, nil
	}
	return nil, fmt.Errorf("column %q: unsupported time column type %T", col, v)
}
