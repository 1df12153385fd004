// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

func sampleTable() *table.Table {
	labels := []string{"a", "a", "a", "a", "b", "b", "b", "b"}
	vals := []float64{1, 2, 3, 4, 10, 11, 12, 14}
	return new(table.Builder).Add("x", labels).Add("y", vals).Done()
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(sampleTable(), &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{`"label":"a"`, `"label":"b"`, "dens"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestDensity(t *testing.T) {
	xs, ds, ok := density([]float64{1, 2, 3, 4, 5}, 32)
	if !ok {
		t.Fatal("density reported not ok")
	}
	if len(xs) != len(ds) || len(xs) == 0 {
		t.Fatalf("got %d xs, %d densities", len(xs), len(ds))
	}
	for i, d := range ds {
		if d < 0 {
			t.Errorf("density[%d] = %v, want >= 0", i, d)
		}
	}
}

func TestSingletonGroupSkipped(t *testing.T) {
	labels := []string{"a", "a", "a", "solo"}
	vals := []float64{1, 2, 3, 9}
	tab := new(table.Builder).Add("x", labels).Add("y", vals).Done()

	var buf bytes.Buffer
	if err := New().Render(tab, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if strings.Contains(doc, `"label":"solo"`) {
		t.Error("singleton category was not skipped")
	}
	if !strings.Contains(doc, `"label":"a"`) {
		t.Error("valid category missing")
	}
}

func TestAllSingletonsEmpty(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []string{"a", "b"}).
		Add("y", []float64{1, 2}).
		Done()
	err := New().Render(tab, new(bytes.Buffer))
	if !errors.Is(err, vizkit.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestMissingColumn(t *testing.T) {
	tab := new(table.Builder).Add("x", []string{"a"}).Done()
	var merr *vizkit.MissingColumnError
	if err := New().Render(tab, new(bytes.Buffer)); !errors.As(err, &merr) {
		t.Fatalf("got %v, want MissingColumnError", err)
	}
}
