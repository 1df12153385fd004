// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movingbubbles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
)

// entitySeries is one entity's animation schedule: data is the
// flattened "stateID,duration,stateID,duration,..." string the
// client-side renderer consumes.
type entitySeries struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// serializeStates converts a standardized table into per-entity
// schedules, entities in sorted id order, each entity's pairs in
// timestamp order. Every state must be present in the registry.
func serializeStates(t *table.Table, o Options, reg *vizkit.Registry) ([]entitySeries, error) {
	o = o.withDefaults()

	entities, err := tabular.Strings(t, o.Entity)
	if err != nil {
		return nil, err
	}
	states, err := tabular.Strings(t, o.State)
	if err != nil {
		return nil, err
	}
	durCol := t.Column(ColTimeInState)
	if durCol == nil {
		return nil, &vizkit.MissingColumnError{Column: ColTimeInState, Have: t.Columns()}
	}
	durations := durCol.([]int64)

	parts := make(map[string][]string)
	for i, ent := range entities {
		e, ok := reg.Lookup(states[i])
		if !ok {
			return nil, &vizkit.ConfigurationError{
				Option: "registry",
				Value:  states[i],
				Detail: "state not present in the supplied registry",
			}
		}
		parts[ent] = append(parts[ent],
			strconv.Itoa(e.ID), strconv.FormatInt(durations[i], 10))
	}

	ids := make([]string, 0, len(parts))
	for id := range parts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]entitySeries, len(ids))
	for k, id := range ids {
		out[k] = entitySeries{ID: id, Data: strings.Join(parts[id], ",")}
	}
	return out, nil
}
