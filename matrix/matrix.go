// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix renders a dense labeled matrix (an adjacency or
// correlation matrix, say) as a heatmap without any reshaping.
package matrix

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/heatmap"
)

type chartOptions struct {
	title    string
	gradient string
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithGradient selects the continuous color scale.
func WithGradient(name string) Option {
	return func(o *chartOptions) { o.gradient = name }
}

// Chart is a configured matrix render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{title: "Matrix", gradient: heatmap.DefaultGradient}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render writes the matrix as a heatmap document. grid is indexed
// [row][col] and must be rectangular with matching label counts.
func (c *Chart) Render(rows, cols []string, grid [][]float64, w io.Writer) error {
	if len(rows) == 0 || len(cols) == 0 || len(grid) == 0 {
		return vizkit.ErrEmptyInput
	}
	if len(grid) != len(rows) {
		return &vizkit.ConfigurationError{
			Option: "matrix shape",
			Value:  fmt.Sprintf("%d rows", len(grid)),
			Detail: fmt.Sprintf("want %d to match the row labels", len(rows)),
		}
	}
	for i, r := range grid {
		if len(r) != len(cols) {
			return &vizkit.ConfigurationError{
				Option: "matrix shape",
				Value:  fmt.Sprintf("row %d has %d columns", i, len(r)),
				Detail: fmt.Sprintf("want %d to match the column labels", len(cols)),
			}
		}
	}
	hm := heatmap.New(heatmap.WithTitle(c.o.title), heatmap.WithGradient(c.o.gradient))
	return hm.RenderGrid(cols, rows, grid, w)
}

// Save renders the matrix and writes it through out.
func (c *Chart) Save(rows, cols []string, grid [][]float64, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(rows, cols, grid, &buf); err != nil {
		return "", err
	}
	return out.Write("matrix", buf.Bytes())
}
