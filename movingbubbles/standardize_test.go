// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movingbubbles

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func obsTable(entities []string, times []time.Time, states []string) *table.Table {
	return new(table.Builder).
		Add("sample_id", entities).
		Add("datetime", tabular.ByTime(times)).
		Add("state", states).
		Done()
}

// threeEntities builds the worked scenario: entities 1, 2, 3 each
// walking a six-step home→sleeping timeline, spaced 5, 10 and 15
// minutes apart respectively.
func threeEntities() *table.Table {
	steps := []string{"home", "travel", "work", "eating", "sport", "sleeping"}
	spacing := map[string]time.Duration{"1": 5 * time.Minute, "2": 10 * time.Minute, "3": 15 * time.Minute}

	var entities []string
	var times []time.Time
	var states []string
	for _, ent := range []string{"1", "2", "3"} {
		for i, s := range steps {
			entities = append(entities, ent)
			times = append(times, t0.Add(time.Duration(i)*spacing[ent]))
			states = append(states, s)
		}
	}
	return obsTable(entities, times, states)
}

// rows returns the standardized table's columns keyed for easy
// assertion.
type row struct {
	entity string
	state  string
	delta  time.Duration
	tis    int64
}

func rows(t *table.Table) []row {
	entities := t.Column("sample_id").([]string)
	states := t.Column("state").([]string)
	deltas := t.Column(ColDelta).([]time.Duration)
	tis := t.Column(ColTimeInState).([]int64)
	out := make([]row, t.Len())
	for i := range out {
		out[i] = row{entities[i], states[i], deltas[i], tis[i]}
	}
	return out
}

func entityRows(rs []row, entity string) []row {
	var out []row
	for _, r := range rs {
		if r.entity == entity {
			out = append(out, r)
		}
	}
	return out
}

func TestSamplewiseScenario(t *testing.T) {
	std, err := Standardize(threeEntities(), Options{Policy: PolicySamplewise, Unit: UnitMinutes})
	if err != nil {
		t.Fatal(err)
	}
	rs := rows(std)

	e1 := entityRows(rs, "1")
	if e1[0].delta != 5*time.Minute || e1[0].tis != 5 {
		t.Errorf("entity 1 first delta = %v (%d): want 5m (5)", e1[0].delta, e1[0].tis)
	}
	e2 := entityRows(rs, "2")
	if e2[0].delta != 10*time.Minute || e2[0].tis != 10 {
		t.Errorf("entity 2 first delta = %v (%d): want 10m (10)", e2[0].delta, e2[0].tis)
	}
	// Every entity's true last-row delta is zero, so after
	// correction it must be exactly the one-minute floor.
	for _, ent := range []string{"1", "2", "3"} {
		er := entityRows(rs, ent)
		last := er[len(er)-1]
		if last.state != "sleeping" {
			t.Errorf("entity %s last state = %q, want sleeping", ent, last.state)
		}
		if last.delta != time.Minute || last.tis != 1 {
			t.Errorf("entity %s last delta = %v (%d): want 1m (1)", ent, last.delta, last.tis)
		}
	}
	// Interior rows are exact adjacent differences.
	for i := 0; i < len(e1)-1; i++ {
		if e1[i].delta != 5*time.Minute {
			t.Errorf("entity 1 row %d delta = %v, want 5m", i, e1[i].delta)
		}
	}
}

func TestOutputSortedByTimestamp(t *testing.T) {
	std, err := Standardize(threeEntities(), Options{Policy: PolicySamplewise, Unit: UnitMinutes})
	if err != nil {
		t.Fatal(err)
	}
	times := std.Column("datetime").(tabular.ByTime)
	for i := 1; i < len(times); i++ {
		if times[i].Before(times[i-1]) {
			t.Fatalf("output rows not in timestamp order at %d: %v < %v", i, times[i], times[i-1])
		}
	}
}

func TestZeroDurationCorrection(t *testing.T) {
	tab := obsTable(
		[]string{"a", "a"},
		[]time.Time{t0, t0},
		[]string{"home", "work"},
	)
	std, err := Standardize(tab, Options{Policy: PolicySamplewise, Unit: UnitMinutes})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows(std) {
		if r.delta != time.Minute || r.tis != 1 {
			t.Errorf("state %s: delta = %v (%d), want 1m (1)", r.state, r.delta, r.tis)
		}
	}
}

// PolicyNone pairs rows per entity over the globally sorted order.
// With A@0s, B@60s, A@180s, the first A row must see the next A row
// (180s away), not the adjacent B row.
func TestPolicyNonePairing(t *testing.T) {
	tab := obsTable(
		[]string{"A", "B", "A"},
		[]time.Time{t0, t0.Add(time.Minute), t0.Add(3 * time.Minute)},
		[]string{"home", "home", "work"},
	)
	std, err := Standardize(tab, Options{Policy: PolicyNone, Unit: UnitSeconds})
	if err != nil {
		t.Fatal(err)
	}
	rs := rows(std)
	want := []row{
		{"A", "home", 180 * time.Second, 180},
		{"B", "home", time.Second, 1}, // no next B row: zero, then floored
		{"A", "work", time.Second, 1},
	}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("got %v, want %v", rs, want)
	}
}

// PolicyRelative diffs the global sequence ignoring entities, then
// clears every entity's last observation.
func TestPolicyRelative(t *testing.T) {
	tab := obsTable(
		[]string{"A", "B", "A", "B"},
		[]time.Time{t0, t0.Add(1 * time.Second), t0.Add(4 * time.Second), t0.Add(9 * time.Second)},
		[]string{"s1", "s1", "s2", "s2"},
	)
	std, err := Standardize(tab, Options{Policy: PolicyRelative, Unit: UnitSeconds})
	if err != nil {
		t.Fatal(err)
	}
	rs := rows(std)
	want := []row{
		{"A", "s1", 1 * time.Second, 1}, // global diff to B@1
		{"B", "s1", 3 * time.Second, 3}, // global diff to A@4
		{"A", "s2", time.Second, 1},     // last A row: sentinel, floored
		{"B", "s2", time.Second, 1},     // last B row: sentinel, floored
	}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("got %v, want %v", rs, want)
	}
}

func TestPolicyMinimum(t *testing.T) {
	tab := obsTable(
		[]string{"B", "A", "A"},
		[]time.Time{t0.Add(10 * time.Second), t0, t0.Add(4 * time.Second)},
		[]string{"s1", "s1", "s2"},
	)
	std, err := Standardize(tab, Options{Policy: PolicyMinimum, Unit: UnitSeconds})
	if err != nil {
		t.Fatal(err)
	}
	rs := rows(std)
	// Output is timestamp sorted; each delta is the gap from the
	// earliest timestamp (the zero gap floors to one second).
	want := []row{
		{"A", "s1", time.Second, 1},
		{"A", "s2", 4 * time.Second, 4},
		{"B", "s1", 10 * time.Second, 10},
	}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("got %v, want %v", rs, want)
	}
}

// Standardizing a standardized table again with the same policy must
// reproduce the same time_in_state values: the timestamps are
// unchanged, so the recomputed adjacent-pair diffs are identical.
func TestRestandardizeIdempotent(t *testing.T) {
	opts := Options{Policy: PolicySamplewise, Unit: UnitMinutes}
	std1, err := Standardize(threeEntities(), opts)
	if err != nil {
		t.Fatal(err)
	}
	std2, err := Standardize(std1, opts)
	if err != nil {
		t.Fatal(err)
	}
	v1 := std1.Column(ColTimeInState).([]int64)
	v2 := std2.Column(ColTimeInState).([]int64)
	if !reflect.DeepEqual(v1, v2) {
		t.Errorf("time_in_state changed on re-standardization:\nfirst  %v\nsecond %v", v1, v2)
	}
}

func TestStringTimestampParsing(t *testing.T) {
	tab := new(table.Builder).
		Add("sample_id", []string{"a", "a"}).
		Add("datetime", []string{"01-03-2026 09:00:00", "01-03-2026 09:05:00"}).
		Add("state", []string{"home", "work"}).
		Done()
	std, err := Standardize(tab, Options{Policy: PolicySamplewise, Unit: UnitMinutes})
	if err != nil {
		t.Fatal(err)
	}
	if got := rows(std)[0].delta; got != 5*time.Minute {
		t.Errorf("delta = %v, want 5m", got)
	}
}

func TestMalformedTimestamp(t *testing.T) {
	tab := new(table.Builder).
		Add("sample_id", []string{"a", "a"}).
		Add("datetime", []string{"01-03-2026 09:00:00", "not a time"}).
		Add("state", []string{"home", "work"}).
		Done()
	_, err := Standardize(tab, Options{})
	var perr *vizkit.TimestampParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *TimestampParseError", err)
	}
	if perr.Row != 1 {
		t.Errorf("Row = %d, want 1", perr.Row)
	}
}

func TestConfigurationErrors(t *testing.T) {
	tab := obsTable([]string{"a"}, []time.Time{t0}, []string{"home"})

	var cerr *vizkit.ConfigurationError
	if _, err := Standardize(tab, Options{Policy: Policy(99)}); !errors.As(err, &cerr) {
		t.Errorf("bad policy: err = %v, want *ConfigurationError", err)
	}
	if _, err := Standardize(tab, Options{Unit: Unit(99)}); !errors.As(err, &cerr) {
		t.Errorf("bad unit: err = %v, want *ConfigurationError", err)
	}
	if _, err := ParsePolicy("sideways"); !errors.As(err, &cerr) {
		t.Errorf("ParsePolicy: err = %v, want *ConfigurationError", err)
	}
	if _, err := ParseUnit("fortnights"); !errors.As(err, &cerr) {
		t.Errorf("ParseUnit: err = %v, want *ConfigurationError", err)
	}
}

func TestMissingColumnAndEmpty(t *testing.T) {
	if _, err := Standardize(nil, Options{}); !errors.Is(err, vizkit.ErrEmptyInput) {
		t.Errorf("nil table: err = %v, want ErrEmptyInput", err)
	}

	tab := new(table.Builder).
		Add("sample_id", []string{"a"}).
		Add("datetime", tabular.ByTime{t0}).
		Done()
	var merr *vizkit.MissingColumnError
	if _, err := Standardize(tab, Options{}); !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *MissingColumnError", err)
	}
	if merr.Column != "state" {
		t.Errorf("Column = %q, want state", merr.Column)
	}
}

func TestInputNotMutated(t *testing.T) {
	entities := []string{"b", "a"}
	times := []time.Time{t0.Add(time.Hour), t0}
	states := []string{"s2", "s1"}
	tab := obsTable(entities, times, states)

	if _, err := Standardize(tab, Options{Policy: PolicySamplewise}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(entities, []string{"b", "a"}) ||
		!times[0].Equal(t0.Add(time.Hour)) ||
		!reflect.DeepEqual(states, []string{"s2", "s1"}) {
		t.Error("Standardize mutated the caller's column data")
	}
}

func TestUnitConversions(t *testing.T) {
	for _, tc := range []struct {
		unit Unit
		d    time.Duration
		want int64
	}{
		{UnitSeconds, 90 * time.Second, 90},
		{UnitMinutes, 5 * time.Minute, 5},
		{UnitMinutes, 61 * time.Second, 2}, // minutes round up
		{UnitDays, 36 * time.Hour, 1},      // days truncate
		{UnitDays, 23 * time.Hour, 0},
	} {
		if got := tc.unit.count(tc.d); got != tc.want {
			t.Errorf("%s.count(%v) = %d, want %d", tc.unit, tc.d, got, tc.want)
		}
	}
}
