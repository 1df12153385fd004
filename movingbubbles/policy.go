// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movingbubbles

import (
	"math"
	"time"

	"github.com/vizkit/vizkit"
)

// Policy selects how inter-observation deltas are computed across
// entity timelines.
type Policy int

const (
	// PolicyNone sorts the whole table by timestamp and pairs
	// each row with the next row for the same entity in that
	// global order. Note this is not a pure global diff: entity
	// identity is ignored for ordering but respected for pairing.
	PolicyNone Policy = iota

	// PolicySamplewise computes deltas independently inside each
	// entity's timeline.
	PolicySamplewise

	// PolicyRelative diffs the globally sorted sequence with no
	// entity pairing at all, then clears the delta of every
	// entity's last observation.
	PolicyRelative

	// PolicyMinimum measures every observation against the
	// dataset's earliest timestamp. Not useful for state-duration
	// modeling; kept for completeness.
	PolicyMinimum
)

var policyNames = []string{"none", "samplewise", "relative", "minimum"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "invalid"
	}
	return policyNames[p]
}

func (p Policy) valid() bool {
	return p >= PolicyNone && p <= PolicyMinimum
}

// ParsePolicy maps a policy token to a Policy. The empty string
// means PolicyNone.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyNone, nil
	}
	for i, name := range policyNames {
		if s == name {
			return Policy(i), nil
		}
	}
	return 0, &vizkit.ConfigurationError{Option: "standardize policy", Value: s}
}

// Unit is the time resolution used for the zero-duration correction
// and for the integer time_in_state conversion.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitMinutes
	UnitDays
)

var unitNames = []string{"seconds", "minutes", "days"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "invalid"
	}
	return unitNames[u]
}

func (u Unit) valid() bool {
	return u >= UnitSeconds && u <= UnitDays
}

// ParseUnit maps a unit token to a Unit. The empty string means
// UnitSeconds.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return UnitSeconds, nil
	}
	for i, name := range unitNames {
		if s == name {
			return Unit(i), nil
		}
	}
	return 0, &vizkit.ConfigurationError{Option: "time unit", Value: s}
}

// minimum is the increment applied to zero-length intervals so the
// downstream animation never stalls on a state.
func (u Unit) minimum() time.Duration {
	switch u {
	case UnitMinutes:
		return time.Minute
	case UnitDays:
		return 24 * time.Hour
	}
	return time.Second
}

// count converts a duration to the integer displayed as
// time_in_state: whole seconds, minutes rounded up, or whole days
// truncated.
func (u Unit) count(d time.Duration) int64 {
	switch u {
	case UnitMinutes:
		return int64(math.Ceil(d.Seconds() / 60))
	case UnitDays:
		return int64(d / (24 * time.Hour))
	}
	return int64(d / time.Second)
}
