// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap renders long-form (x, y, value) tables or dense
// grids as an interactive heatmap with a continuous color scale.
package heatmap

import (
	"bytes"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
)

type chartOptions struct {
	x        string
	y        string
	value    string
	gradient string
	title    string
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the x, y and value columns for long-form input.
func WithColumns(x, y, value string) Option {
	return func(o *chartOptions) { o.x, o.y, o.value = x, y, value }
}

// WithGradient selects the continuous color scale (see Gradients).
func WithGradient(name string) Option {
	return func(o *chartOptions) { o.gradient = name }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// Chart is a configured heatmap render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{x: "x", y: "y", value: "value", gradient: DefaultGradient, title: "Heatmap"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render reshapes a long-form table into a grid, with x and y
// categories in first-seen order, and writes the chart document to
// w. Cells never observed stay NaN and render as gaps.
func (c *Chart) Render(t *table.Table, w io.Writer) error {
	if err := tabular.Require(t, c.o.x, c.o.y, c.o.value); err != nil {
		return err
	}
	xs, err := tabular.Strings(t, c.o.x)
	if err != nil {
		return err
	}
	ys, err := tabular.Strings(t, c.o.y)
	if err != nil {
		return err
	}
	vals, err := tabular.Floats(t, c.o.value)
	if err != nil {
		return err
	}

	xLabels, xi := firstSeen(xs)
	yLabels, yi := firstSeen(ys)
	grid := make([][]float64, len(yLabels))
	for i := range grid {
		grid[i] = make([]float64, len(xLabels))
		for j := range grid[i] {
			grid[i][j] = math.NaN()
		}
	}
	for i := range vals {
		grid[yi[ys[i]]][xi[xs[i]]] = vals[i]
	}
	return c.RenderGrid(xLabels, yLabels, grid, w)
}

// RenderGrid writes a dense grid directly; grid is indexed
// [y][x]. The matrix package renders through this path.
func (c *Chart) RenderGrid(xLabels, yLabels []string, grid [][]float64, w io.Writer) error {
	if len(grid) == 0 || len(xLabels) == 0 {
		return vizkit.ErrEmptyInput
	}
	stops, err := GradientStops(c.o.gradient, 9)
	if err != nil {
		return err
	}

	min, max := math.Inf(1), math.Inf(-1)
	var data []opts.HeatMapData
	for yi, row := range grid {
		for xi, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, v}})
		}
	}
	if len(data) == 0 {
		return vizkit.ErrEmptyInput
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.o.title, Width: "900px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: c.o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels, SplitArea: &opts.SplitArea{Show: true}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels, SplitArea: &opts.SplitArea{Show: true}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        float32(min),
			Max:        float32(max),
			InRange:    &opts.VisualMapInRange{Color: stops},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("heat", data)
	return hm.Render(w)
}

// Save renders a long-form table and writes it through out.
func (c *Chart) Save(t *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(t, &buf); err != nil {
		return "", err
	}
	return out.Write("heatmap", buf.Bytes())
}

func firstSeen(vals []string) ([]string, map[string]int) {
	var order []string
	index := make(map[string]int)
	for _, v := range vals {
		if _, ok := index[v]; !ok {
			index[v] = len(order)
			order = append(order, v)
		}
	}
	return order, index
}
