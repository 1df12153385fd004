// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package violin renders per-category value distributions as violin
// plots. Densities are estimated server-side with kernel density
// estimation, so the emitted page only draws polygons.
package violin

import (
	"bytes"
	"io"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/htmlpage"
	"github.com/vizkit/vizkit/internal/tabular"
)

type chartOptions struct {
	label    string
	value    string
	scheme   string
	title    string
	samples  int
	registry *vizkit.Registry
	logger   vizkit.Logger
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the category and value columns.
func WithColumns(label, value string) Option {
	return func(o *chartOptions) { o.label, o.value = label, value }
}

// WithScheme sets the color scheme for resolved labels.
func WithScheme(name string) Option {
	return func(o *chartOptions) { o.scheme = name }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithSamples sets how many points each density curve is sampled at.
func WithSamples(n int) Option {
	return func(o *chartOptions) { o.samples = n }
}

// WithRegistry supplies a previously resolved registry.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// WithLogger sets the diagnostics sink.
func WithLogger(l vizkit.Logger) Option {
	return func(o *chartOptions) { o.logger = l }
}

// Chart is a configured violin render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{label: "x", value: "y", title: "Violin", samples: 64}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

type series struct {
	Label  string    `json:"label"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
	Dens   []float64 `json:"dens"`
}

type pageData struct {
	Title  string
	Series []series
}

// Render estimates one density per category and writes the chart
// document to w. Categories with fewer than two distinct values
// cannot carry a density estimate and are skipped with a warning.
func (c *Chart) Render(t *table.Table, w io.Writer) error {
	log := vizkit.EnsureLogger(c.o.logger)
	if err := tabular.Require(t, c.o.label, c.o.value); err != nil {
		return err
	}
	labels, err := tabular.Strings(t, c.o.label)
	if err != nil {
		return err
	}
	vals, err := tabular.Floats(t, c.o.value)
	if err != nil {
		return err
	}

	reg := c.o.registry
	if reg == nil {
		reg, err = vizkit.Resolve(labels, vizkit.WithScheme(c.o.scheme))
		if err != nil {
			return err
		}
	}

	groups := make(map[string][]float64)
	for i, l := range labels {
		groups[l] = append(groups[l], vals[i])
	}

	var out []series
	for _, e := range reg.Entries() {
		xs, ds, ok := density(groups[e.Label], c.o.samples)
		if !ok {
			log.Printf("violin: skipping %q: need at least two distinct values", e.Label)
			continue
		}
		out = append(out, series{Label: e.Label, Color: e.Color, Values: xs, Dens: ds})
	}
	if len(out) == 0 {
		return vizkit.ErrEmptyInput
	}

	return htmlpage.Render(w, pageTemplate, pageData{Title: c.o.title, Series: out})
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(t *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(t, &buf); err != nil {
		return "", err
	}
	return out.Write("violin", buf.Bytes())
}

// density runs the KDE for one category's samples.
func density(samples []float64, n int) (xs, ds []float64, ok bool) {
	distinct := make(map[float64]bool)
	for _, v := range samples {
		distinct[v] = true
	}
	if len(distinct) < 2 {
		return nil, nil, false
	}

	tab := new(table.Builder).Add("value", append([]float64(nil), samples...)).Done()
	g := ggstat.Density{X: "value", N: n}.F(tab)
	dt := g.Table(g.Tables()[0])
	xs = dt.MustColumn("value").([]float64)
	ds = dt.MustColumn("probability density").([]float64)
	return xs, ds, true
}
