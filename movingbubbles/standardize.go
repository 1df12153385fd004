// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movingbubbles

import (
	"sort"
	"time"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
)

// Output column names added by Standardize.
const (
	ColDelta       = "delta"
	ColTimeInState = "time_in_state"
)

// DefaultTimeLayout is the Go reference layout used for string
// timestamp columns when Options.TimeLayout is empty.
const DefaultTimeLayout = "02-01-2006 15:04:05"

// Options configures Standardize and the chart built on it.
type Options struct {
	// Entity, Time and State name the input columns. They default
	// to "sample_id", "datetime" and "state".
	Entity string
	Time   string
	State  string

	Policy Policy
	Unit   Unit

	// TimeLayout is the Go reference layout for parsing string
	// timestamp columns. Ignored for native time columns.
	TimeLayout string

	Logger vizkit.Logger
}

func (o Options) withDefaults() Options {
	if o.Entity == "" {
		o.Entity = "sample_id"
	}
	if o.Time == "" {
		o.Time = "datetime"
	}
	if o.State == "" {
		o.State = "state"
	}
	if o.TimeLayout == "" {
		o.TimeLayout = DefaultTimeLayout
	}
	return o
}

// Standardize computes, for every (entity, timestamp, state) row, how
// long the entity stayed in that state before its next observation.
// It returns a new table holding the input columns plus a "delta"
// duration column and an integer "time_in_state" column in the
// configured unit; rows are sorted by timestamp ascending. The input
// table is not modified.
//
// Deltas with no natural value (an entity's final observation, or
// every final observation under PolicyRelative) become zero, and any
// zero delta is then raised to the unit's minimum increment so that
// no interval has zero length.
func Standardize(t *table.Table, o Options) (*table.Table, error) {
	o = o.withDefaults()
	log := vizkit.EnsureLogger(o.Logger)

	if !o.Policy.valid() {
		return nil, &vizkit.ConfigurationError{Option: "standardize policy", Value: o.Policy.String()}
	}
	if !o.Unit.valid() {
		return nil, &vizkit.ConfigurationError{Option: "time unit", Value: o.Unit.String()}
	}
	if err := tabular.Require(t, o.Entity, o.Time, o.State); err != nil {
		return nil, err
	}

	entities, err := tabular.Strings(t, o.Entity)
	if err != nil {
		return nil, err
	}
	states, err := tabular.Strings(t, o.State)
	if err != nil {
		return nil, err
	}
	times, err := tabular.Times(t, o.Time, o.TimeLayout)
	if err != nil {
		return nil, err
	}

	n := t.Len()
	idx := sortOrder(o.Policy, entities, times)

	// deltas and missing are indexed by original row.
	deltas := make([]time.Duration, n)
	missing := make([]bool, n)

	switch o.Policy {
	case PolicyNone:
		// Walk the global order backwards, remembering the
		// next observation seen for each entity.
		next := make(map[string]int)
		for pos := n - 1; pos >= 0; pos-- {
			i := idx[pos]
			if j, ok := next[entities[i]]; ok {
				deltas[i] = times[j].Sub(times[i])
			}
			next[entities[i]] = i
		}

	case PolicySamplewise:
		for pos := 0; pos < n; pos++ {
			i := idx[pos]
			if pos+1 < n && entities[idx[pos+1]] == entities[i] {
				deltas[i] = times[idx[pos+1]].Sub(times[i])
			}
		}

	case PolicyRelative:
		for pos := 0; pos+1 < n; pos++ {
			deltas[idx[pos]] = times[idx[pos+1]].Sub(times[idx[pos]])
		}
		missing[idx[n-1]] = true
		// Every entity's last-by-timestamp observation loses
		// its delta, even where the global diff gave it one.
		last := make(map[string]int)
		for _, i := range idx {
			last[entities[i]] = i
		}
		for _, i := range last {
			missing[i] = true
		}

	case PolicyMinimum:
		min := times[idx[0]]
		for i := 0; i < n; i++ {
			deltas[i] = times[i].Sub(min)
		}
	}

	for i, m := range missing {
		if m {
			deltas[i] = 0
		}
	}

	floor := o.Unit.minimum()
	corrected := 0
	for i := range deltas {
		if deltas[i] == 0 {
			deltas[i] = floor
			corrected++
		}
	}
	if corrected > 0 {
		log.Printf("movingbubbles: raised %d zero-length intervals to %s", corrected, floor)
	}

	// The output is always in plain timestamp order, whatever
	// order the policy diffed in.
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	sort.SliceStable(out, func(a, b int) bool {
		return times[out[a]].Before(times[out[b]])
	})

	entOut := make([]string, n)
	timeOut := make(tabular.ByTime, n)
	stateOut := make([]string, n)
	deltaOut := make([]time.Duration, n)
	tis := make([]int64, n)
	for k, i := range out {
		entOut[k] = entities[i]
		timeOut[k] = times[i]
		stateOut[k] = states[i]
		deltaOut[k] = deltas[i]
		tis[k] = o.Unit.count(deltas[i])
	}

	return new(table.Builder).
		Add(o.Entity, entOut).
		Add(o.Time, timeOut).
		Add(o.State, stateOut).
		Add(ColDelta, deltaOut).
		Add(ColTimeInState, tis).
		Done(), nil
}

// sortOrder returns row indices in the order the policy diffs in:
// (entity, timestamp) for samplewise, timestamp alone for the rest.
// Sorts are stable, so rows with equal keys keep their input order.
func sortOrder(p Policy, entities []string, times []time.Time) []int {
	idx := make([]int, len(times))
	for i := range idx {
		idx[i] = i
	}
	if p == PolicySamplewise {
		sort.SliceStable(idx, func(a, b int) bool {
			ia, ib := idx[a], idx[b]
			if entities[ia] != entities[ib] {
				return entities[ia] < entities[ib]
			}
			return times[ia].Before(times[ib])
		})
	} else {
		sort.SliceStable(idx, func(a, b int) bool {
			return times[idx[a]].Before(times[idx[b]])
		})
	}
	return idx
}
