// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap renders a weighted parent-child edge list as a
// treemap, tile area proportional to subtree weight.
package treemap

import (
	"bytes"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/hierarchy"
	"github.com/vizkit/vizkit/internal/tabular"
)

type chartOptions struct {
	source string
	target string
	weight string
	title  string
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the parent, child and weight columns.
func WithColumns(source, target, weight string) Option {
	return func(o *chartOptions) { o.source, o.target, o.weight = source, target, weight }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// Chart is a configured treemap render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{source: "source", target: "target", weight: "weight", title: "Treemap"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render links the weighted edge list into a hierarchy and writes
// the chart document to w.
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
	root, err := hierarchy.Build(src, tgt, weights)
	if err != nil {
		return err
	}

	ch := charts.NewTreeMap()
	ch.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.o.title, Width: "900px", Height: "640px"}),
		charts.WithTitleOpts(opts.Title{Title: c.o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	ch.AddSeries("treemap", []opts.TreeMapNode{toTreeMapNode(root)})
	return ch.Render(w)
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(edges *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(edges, &buf); err != nil {
		return "", err
	}
	return out.Write("treemap", buf.Bytes())
}

// toTreeMapNode carries the rolled-up subtree weight so every tile's
// area reflects its whole subtree.
func toTreeMapNode(n *hierarchy.Node) opts.TreeMapNode {
	d := opts.TreeMapNode{Name: n.Name, Value: int(n.Sum())}
	for _, c := range n.Children {
		d.Children = append(d.Children, toTreeMapNode(c))
	}
	return d
}
