// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movingbubbles

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vizkit/vizkit"
)

func TestSerializeStates(t *testing.T) {
	tab := obsTable(
		[]string{"p2", "p1", "p1"},
		[]time.Time{t0, t0, t0.Add(5 * time.Minute)},
		[]string{"home", "home", "work"},
	)
	opts := Options{Policy: PolicySamplewise, Unit: UnitMinutes}
	std, err := Standardize(tab, opts)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := vizkit.Resolve([]string{"home", "work"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := serializeStates(std, opts, reg)
	if err != nil {
		t.Fatal(err)
	}
	// Entities in sorted id order, each entity's (id, duration)
	// pairs flattened with bare commas. p1: home for 5, then work
	// floored to 1. p2: home floored to 1.
	want := []entitySeries{
		{ID: "p1", Data: "0,5,1,1"},
		{ID: "p2", Data: "0,1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSerializeUnknownState(t *testing.T) {
	tab := obsTable([]string{"p1"}, []time.Time{t0}, []string{"home"})
	opts := Options{Policy: PolicySamplewise}
	std, err := Standardize(tab, opts)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := vizkit.Resolve([]string{"other"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := serializeStates(std, opts, reg); err == nil {
		t.Error("serializing a state missing from the registry should fail")
	}
}

func TestChartRender(t *testing.T) {
	c := New(
		WithPolicy(PolicySamplewise),
		WithUnit(UnitMinutes),
		WithCenter("sleeping"),
		WithTitle("daily routine"),
	)
	var buf bytes.Buffer
	if err := c.Render(threeEntities(), &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{"daily routine", "sleeping", `"id":"1"`, "minutes"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document does not contain %q", want)
		}
	}
}

func TestChartRenderWithPinnedRegistry(t *testing.T) {
	// Resolving once and reusing the registry keeps ids stable
	// across renders even if colors were edited in between.
	reg, err := vizkit.Resolve(
		[]string{"home", "travel", "work", "eating", "sport", "sleeping"},
		vizkit.WithCenter("sleeping"))
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Set("work", vizkit.Entry{Color: "#123456", Size: 12, Opacity: 1}); err != nil {
		t.Fatal(err)
	}

	c := New(WithPolicy(PolicySamplewise), WithUnit(UnitMinutes), WithRegistry(reg))
	var buf bytes.Buffer
	if err := c.Render(threeEntities(), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "#123456") {
		t.Error("edited registry color not carried into the document")
	}
}

func TestChartRenderBadColorMethod(t *testing.T) {
	c := New(WithColorMethod(ColorMethod("plaid")))
	var buf bytes.Buffer
	if err := c.Render(threeEntities(), &buf); err == nil {
		t.Error("unknown color method should fail before rendering")
	}
}
