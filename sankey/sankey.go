// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sankey renders a weighted edge list as a sankey flow
// diagram.
package sankey

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
	source   string
	target   string
	weight   string
	scheme   string
	title    string
	registry *vizkit.Registry
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the source, target and weight columns.
func WithColumns(source, target, weight string) Option {
	return func(o *chartOptions) { o.source, o.target, o.weight = source, target, weight }
}

// WithScheme sets the color scheme for resolved labels.
func WithScheme(name string) Option {
	return func(o *chartOptions) { o.scheme = name }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithRegistry supplies a previously resolved registry.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// Chart is a configured sankey render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{source: "source", target: "target", weight: "weight", title: "Sankey"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render shapes the edge list into sankey nodes and links and writes
// the chart document to w. Nodes take registry order (first-seen
// across the edge rows) and registry colors.
func (c *Chart) Render(edges *table.Table, w io.Writer) error {
	if err := tabular.Require(edges, c.o.source, c.o.target, c.o.weight); err != nil {
		return err
	}
	src, err := tabular.Strings(edges, c.o.source)
	if err != nil {
		return err
	}
	tgt, err := tabular.Strings(edges, c.o.target)
	if err != nil {
		return err
	}
	weights, err := tabular.Floats(edges, c.o.weight)
	if err != nil {
		return err
	}

	reg := c.o.registry
	if reg == nil {
		all := make([]string, 0, 2*len(src))
		for i := range src {
			all = append(all, src[i], tgt[i])
		}
		reg, err = vizkit.Resolve(all, vizkit.WithScheme(c.o.scheme))
		if err != nil {
			return err
		}
	}

	nodes := make([]opts.SankeyNode, 0, reg.Len())
	colors := make(opts.Colors, 0, reg.Len())
	for _, e := range reg.Entries() {
		nodes = append(nodes, opts.SankeyNode{Name: e.Label})
		colors = append(colors, e.Color)
	}
	links := make([]opts.SankeyLink, len(src))
	for i := range src {
		links[i] = opts.SankeyLink{Source: src[i], Target: tgt[i], Value: float32(weights[i])}
	}

	sk := charts.NewSankey()
	sk.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.o.title, Width: "900px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: c.o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithColorsOpts(colors),
	)
	sk.AddSeries("flow", nodes, links, charts.WithLabelOpts(opts.Label{Show: true}))
	return sk.Render(w)
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(edges *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(edges, &buf); err != nil {
		return "", err
	}
	return out.Write("sankey", buf.Bytes())
}
