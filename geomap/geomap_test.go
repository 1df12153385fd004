// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomap

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

func cityTable() *table.Table {
	return new(table.Builder).
		Add("label", []string{"Amsterdam", "Paris", "Berlin"}).
		Add("lat", []float64{52.37, 48.86, 52.52}).
		Add("lon", []float64{4.90, 2.35, 13.40}).
		Done()
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(cityTable(), &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{"Amsterdam", "Paris", "leaflet", "circleMarker"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestInvalidCoordinatesDropped(t *testing.T) {
	tab := new(table.Builder).
		Add("label", []string{"ok", "far", "nan"}).
		Add("lat", []float64{10, 95, math.NaN()}).
		Add("lon", []float64{10, 0, 0}).
		Done()

	var log recordingLogger
	var buf bytes.Buffer
	if err := New(WithLogger(&log)).Render(tab, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if !strings.Contains(doc, `"label":"ok"`) {
		t.Error("valid marker missing")
	}
	if strings.Contains(doc, `"label":"far"`) || strings.Contains(doc, `"label":"nan"`) {
		t.Error("invalid coordinates not dropped")
	}
	if len(log.lines) != 2 {
		t.Errorf("got %d warnings, want 2", len(log.lines))
	}
}

func TestSizeColumn(t *testing.T) {
	tab := new(table.Builder).
		Add("label", []string{"a", "b"}).
		Add("lat", []float64{1, 2}).
		Add("lon", []float64{1, 2}).
		Add("pop", []float64{3, 17}).
		Done()

	var buf bytes.Buffer
	err := New(WithSizeColumn("pop")).Render(tab, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"size":17`) {
		t.Error("size column not applied")
	}
}

func TestAllInvalidEmpty(t *testing.T) {
	tab := new(table.Builder).
		Add("label", []string{"x"}).
		Add("lat", []float64{200}).
		Add("lon", []float64{0}).
		Done()
	err := New().Render(tab, new(bytes.Buffer))
	if !errors.Is(err, vizkit.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

type recordingLogger struct{ lines []string }

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}
