// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

func TestRender(t *testing.T) {
	tab := new(table.Builder).
		Add("source", []string{"world", "world", "europe"}).
		Add("target", []string{"europe", "asia", "norway"}).
		Done()

	var buf bytes.Buffer
	if err := New(WithTitle("regions")).Render(tab, &buf); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{"regions", "norway", "asia"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document does not contain %q", want)
		}
	}
}

func TestRenderCycle(t *testing.T) {
	tab := new(table.Builder).
		Add("source", []string{"a", "b"}).
		Add("target", []string{"b", "a"}).
		Done()
	var cerr *vizkit.ConfigurationError
	if err := New().Render(tab, new(bytes.Buffer)); !errors.As(err, &cerr) {
		t.Errorf("err = %v, want *ConfigurationError", err)
	}
}
