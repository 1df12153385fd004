// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeseries renders (timestamp, value) tables as line
// charts over a time axis, one line per series label.
package timeseries

import (
	"bytes"
	"io"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
)

// DefaultTimeLayout matches the moving-bubbles default so CSV
// exports travel between the two charts unchanged.
const DefaultTimeLayout = "02-01-2006 15:04:05"

type chartOptions struct {
	time     string
	value    string
	label    string
	layout   string
	scheme   string
	title    string
	registry *vizkit.Registry
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the timestamp and value columns.
func WithColumns(timeCol, value string) Option {
	return func(o *chartOptions) { o.time, o.value = timeCol, value }
}

// WithLabelColumn splits rows into one line per label value.
func WithLabelColumn(label string) Option {
	return func(o *chartOptions) { o.label = label }
}

// WithTimeLayout sets the Go reference layout for string timestamps.
func WithTimeLayout(layout string) Option {
	return func(o *chartOptions) { o.layout = layout }
}

// WithScheme sets the color scheme for resolved labels.
func WithScheme(name string) Option {
	return func(o *chartOptions) { o.scheme = name }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithRegistry supplies a previously resolved registry for the label
// column.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// Chart is a configured time-series render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{time: "datetime", value: "value", layout: DefaultTimeLayout, title: "Time series"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render writes the chart document to w. Points are plotted at
// millisecond epoch positions on a time axis, so uneven sampling
// keeps its true spacing.
func (c *Chart) Render(t *table.Table, w io.Writer) error {
	cols := []string{c.o.time, c.o.value}
	if c.o.label != "" {
		cols = append(cols, c.o.label)
	}
	if err := tabular.Require(t, cols...); err != nil {
		return err
	}
	times, err := tabular.Times(t, c.o.time, c.o.layout)
	if err != nil {
		return err
	}
	vals, err := tabular.Floats(t, c.o.value)
	if err != nil {
		return err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.o.title, Width: "900px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: c.o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: c.o.time}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: c.o.value}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	line.SetXAxis(nil)

	if c.o.label == "" {
		line.AddSeries(c.o.value, lineData(times, vals, nil, ""))
		return line.Render(w)
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
		line.AddSeries(e.Label, lineData(times, vals, labels, e.Label),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: e.Color}))
	}
	return line.Render(w)
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(t *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(t, &buf); err != nil {
		return "", err
	}
	return out.Write("timeseries", buf.Bytes())
}

func lineData(times []time.Time, vals []float64, labels []string, label string) []opts.LineData {
	var data []opts.LineData
	for i := range times {
		if labels != nil && labels[i] != label {
			continue
		}
		data = append(data, opts.LineData{Value: []interface{}{times[i].UnixMilli(), vals[i]}})
	}
	return data
}
