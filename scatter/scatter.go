// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatter renders x/y point tables, optionally grouped into
// colored series by a label column.
package scatter

import (
	"bytes"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
)

type chartOptions struct {
	x        string
	y        string
	label    string
	scheme   string
	title    string
	size     int
	registry *vizkit.Registry
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the x and y columns.
func WithColumns(x, y string) Option {
	return func(o *chartOptions) { o.x, o.y = x, y }
}

// WithLabelColumn groups points into one series per label value.
// Without it the chart renders a single series.
func WithLabelColumn(label string) Option {
	return func(o *chartOptions) { o.label = label }
}

// WithScheme sets the color scheme for resolved labels.
func WithScheme(name string) Option {
	return func(o *chartOptions) { o.scheme = name }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithPointSize sets the symbol size in pixels.
func WithPointSize(size int) Option {
	return func(o *chartOptions) { o.size = size }
}

// WithRegistry supplies a previously resolved registry for the label
// column.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// Chart is a configured scatter render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{x: "x", y: "y", title: "Scatter", size: 8}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render writes the chart document to w.
func (c *Chart) Render(t *table.Table, w io.Writer) error {
	cols := []string{c.o.x, c.o.y}
	if c.o.label != "" {
		cols = append(cols, c.o.label)
	}
	if err := tabular.Require(t, cols...); err != nil {
		return err
	}
	xs, err := tabular.Floats(t, c.o.x)
	if err != nil {
		return err
	}
	ys, err := tabular.Floats(t, c.o.y)
	if err != nil {
		return err
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.o.title, Width: "900px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: c.o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: c.o.x}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: c.o.y}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	if c.o.label == "" {
		sc.AddSeries("points", pointData(xs, ys, nil, "", c.o.size))
		return sc.Render(w)
	}

	labels, err := tabular.Strings(t, c.o.label)
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
	for _, e := range reg.Entries() {
		sc.AddSeries(e.Label, pointData(xs, ys, labels, e.Label, c.o.size),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: e.Color, Opacity: float32(e.Opacity)}))
	}
	return sc.Render(w)
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(t *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(t, &buf); err != nil {
		return "", err
	}
	return out.Write("scatter", buf.Bytes())
}

// pointData gathers the points for one series; label filtering is
// skipped when labels is nil.
func pointData(xs, ys []float64, labels []string, label string, size int) []opts.ScatterData {
	var data []opts.ScatterData
	for i := range xs {
		if labels != nil && labels[i] != label {
			continue
		}
		data = append(data, opts.ScatterData{
			Value:      []interface{}{xs[i], ys[i]},
			SymbolSize: size,
		})
	}
	return data
}
