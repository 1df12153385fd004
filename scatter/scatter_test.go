// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

func TestRenderSingleSeries(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3}).
		Add("y", []float64{4, 5, 6}).
		Done()

	var buf bytes.Buffer
	if err := New(WithTitle("spread")).Render(tab, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{"spread", "scatter", "points"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderLabeledSeries(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3, 4}).
		Add("y", []float64{1, 2, 3, 4}).
		Add("cluster", []string{"a", "b", "a", "b"}).
		Done()

	var buf bytes.Buffer
	err := New(WithLabelColumn("cluster")).Render(tab, &buf)
	if err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if !strings.Contains(doc, `"a"`) || !strings.Contains(doc, `"b"`) {
		t.Error("per-label series missing")
	}
}

func TestPointDataFiltering(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20, 30}
	labels := []string{"a", "b", "a"}

	got := pointData(xs, ys, labels, "a", 8)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[1].Value.([]interface{})[1] != 30.0 {
		t.Errorf("second point = %v, want y 30", got[1].Value)
	}
}

func TestStringColumns(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []string{"1.5", "2.5"}).
		Add("y", []string{"3", "4"}).
		Done()
	if err := New().Render(tab, new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}
}

func TestMissingColumn(t *testing.T) {
	tab := new(table.Builder).Add("x", []float64{1}).Done()
	var merr *vizkit.MissingColumnError
	if err := New().Render(tab, new(bytes.Buffer)); !errors.As(err, &merr) {
		t.Fatalf("got %v, want MissingColumnError", err)
	}
	if merr.Column != "y" {
		t.Errorf("Column = %q, want y", merr.Column)
	}
}

func TestEmptyInput(t *testing.T) {
	err := New().Render(nil, new(bytes.Buffer))
	if !errors.Is(err, vizkit.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}
