// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

import (
	"errors"
	"reflect"
	"testing"
)

func ids(r *Registry) map[string]int {
	out := make(map[string]int)
	for _, e := range r.Entries() {
		out[e.Label] = e.ID
	}
	return out
}

func TestResolveFirstSeenOrder(t *testing.T) {
	r, err := Resolve([]string{"b", "a", "b", "c", "a"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"b": 0, "a": 1, "c": 2}
	if got := ids(r); !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	if got := r.Labels(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Labels = %v", got)
	}
}

func TestResolveCenter(t *testing.T) {
	r, err := Resolve([]string{"b", "a", "b", "c", "a"}, WithCenter("a"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"b": 0, "c": 1, "a": 2}
	if got := ids(r); !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}

	// A center label absent from the data changes nothing.
	r, err = Resolve([]string{"b", "a"}, WithCenter("zzz"))
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Labels(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Labels = %v", got)
	}
}

func TestResolveDeterministic(t *testing.T) {
	in := []string{"x", "y", "z"}
	r1, err := Resolve(in, WithScheme("set1"))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Resolve(in, WithScheme("set1"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r1.Entries(), r2.Entries()) {
		t.Error("identical inputs produced different registries")
	}
}

func TestResolveEmpty(t *testing.T) {
	for _, in := range [][]string{nil, {}, {"", ""}} {
		if _, err := Resolve(in); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Resolve(%v): err = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestResolveUnknownScheme(t *testing.T) {
	var cerr *ConfigurationError
	if _, err := Resolve([]string{"a"}, WithScheme("plasma9000")); !errors.As(err, &cerr) {
		t.Errorf("err = %v, want *ConfigurationError", err)
	}
}

func TestRegistrySet(t *testing.T) {
	r, err := Resolve([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	before, _ := r.Lookup("b")

	if err := r.Set("a", Entry{ID: 99, Label: "hijack", Color: "#101010", Size: 20, Opacity: 1}); err != nil {
		t.Fatal(err)
	}
	got, _ := r.Lookup("a")
	if got.ID != 0 || got.Label != "a" {
		t.Errorf("Set must preserve ID and Label, got %+v", got)
	}
	if got.Color != "#101010" || got.Size != 20 {
		t.Errorf("Set did not apply display fields: %+v", got)
	}
	if got.FontColor != "#ffffff" {
		t.Errorf("FontColor = %q, want recomputed #ffffff for a dark fill", got.FontColor)
	}

	// The other entry is untouched.
	if after, _ := r.Lookup("b"); !reflect.DeepEqual(after, before) {
		t.Errorf("Set(a) changed entry b: %+v != %+v", after, before)
	}

	if err := r.Set("nope", Entry{}); err == nil {
		t.Error("Set of an unknown label should fail")
	}
}

func TestRegistryClone(t *testing.T) {
	r, err := Resolve([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	c := r.Clone()
	if err := c.Set("a", Entry{Color: "#222222"}); err != nil {
		t.Fatal(err)
	}
	orig, _ := r.Lookup("a")
	if orig.Color == "#222222" {
		t.Error("mutating a clone changed the original registry")
	}
}

func TestSchemeColors(t *testing.T) {
	// Small counts take the scheme prefix verbatim.
	got, err := SchemeColors(2, "set1")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"#e41a1c", "#377eb8"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SchemeColors(2, set1) = %v, want %v", got, want)
	}

	// Oversized counts still yield one distinct color per label.
	big, err := SchemeColors(40, "set2")
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, c := range big {
		if seen[c] {
			t.Fatalf("duplicate color %s in oversized scheme", c)
		}
		seen[c] = true
	}

	// hsv works for any count.
	if _, err := SchemeColors(100, "hsv"); err != nil {
		t.Fatal(err)
	}
}
