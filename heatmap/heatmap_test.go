// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

func TestRenderLongForm(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []string{"mon", "tue", "mon"}).
		Add("y", []string{"am", "am", "pm"}).
		Add("value", []float64{1, 2, 3}).
		Done()

	var buf bytes.Buffer
	if err := New(WithTitle("traffic")).Render(tab, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{"traffic", "mon", "tue", "pm"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document does not contain %q", want)
		}
	}
}

func TestRenderGridEmpty(t *testing.T) {
	c := New()
	if err := c.RenderGrid(nil, nil, nil, new(bytes.Buffer)); !errors.Is(err, vizkit.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestUnknownGradient(t *testing.T) {
	var cerr *vizkit.ConfigurationError
	if _, err := GradientStops("lava", 5); !errors.As(err, &cerr) {
		t.Errorf("err = %v, want *ConfigurationError", err)
	}
}

func TestGradientStops(t *testing.T) {
	stops, err := GradientStops("greys", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(stops))
	}
	if stops[0] != "#f7f7f7" || stops[2] != "#252525" {
		t.Errorf("endpoint stops = %v, want gradient endpoints", stops)
	}
}

func TestFirstSeen(t *testing.T) {
	order, index := firstSeen([]string{"b", "a", "b", "c"})
	if want := []string{"b", "a", "c"}; len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Errorf("order = %v, want %v", order, want)
	}
	if index["c"] != 2 {
		t.Errorf("index[c] = %d, want 2", index["c"])
	}
}
