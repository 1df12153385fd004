// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlpage holds the template plumbing shared by the charts
// that ship their own D3 page templates. Chart data is serialized to
// JSON and inlined into the document, so output files work from a
// file:// URL with no companion data fetch.
package htmlpage

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

// Funcs is the function map available to every chart template.
var Funcs = template.FuncMap{
	// json inlines a value as a JavaScript literal.
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}

// MustParse parses a chart page template with the shared FuncMap.
// Call it from a package-level var so a bad template fails at init.
func MustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(Funcs).Parse(text))
}

// Render executes the template into w.
func Render(w io.Writer, t *template.Template, data interface{}) error {
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s: %w", t.Name(), err)
	}
	return nil
}
