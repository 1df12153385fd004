// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree renders a parent-child edge list as a collapsible
// tree.
package tree

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
	title  string
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the parent and child columns.
func WithColumns(source, target string) Option {
	return func(o *chartOptions) { o.source, o.target = source, target }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// Chart is a configured tree render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{source: "source", target: "target", title: "Tree"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

// Render links the edge list into a hierarchy and writes the chart
// document to w.
func (c *Chart) Render(edges *table.Table, w io.Writer) error {
	if err := tabular.Require(edges, c.o.source, c.o.target); err != nil {
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
	root, err := hierarchy.Build(src, tgt, nil)
	if err != nil {
		return err
	}

	ch := charts.NewTree()
	ch.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.o.title, Width: "900px", Height: "640px"}),
		charts.WithTitleOpts(opts.Title{Title: c.o.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	ch.AddSeries("tree", []opts.TreeData{toTreeData(root)})
	return ch.Render(w)
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(edges *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(edges, &buf); err != nil {
		return "", err
	}
	return out.Write("tree", buf.Bytes())
}

func toTreeData(n *hierarchy.Node) opts.TreeData {
	d := opts.TreeData{Name: n.Name}
	for _, c := range n.Children {
		child := toTreeData(c)
		d.Children = append(d.Children, &child)
	}
	return d
}
