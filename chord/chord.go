// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chord renders a weighted directed edge list as an
// interactive chord diagram.
package chord

import (
	"bytes"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/htmlpage"
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

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithRegistry supplies a previously resolved registry.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// Chart is a configured chord render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{source: "source", target: "target", weight: "weight", title: "Chord"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

type pageData struct {
	Title  string
	Labels []vizkit.Entry
	Matrix [][]float64
}

// Render shapes the edge list into one directed weight matrix over
// the union of source and target labels and writes the chart
// document to w. Self-loops are kept; repeated edges accumulate.
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
		// Labels appear in row order, source before target.
		all := make([]string, 0, 2*len(src))
		for i := range src {
			all = append(all, src[i], tgt[i])
		}
		reg, err = vizkit.Resolve(all, vizkit.WithScheme(c.o.scheme))
		if err != nil {
			return err
		}
	}

	matrix, err := buildMatrix(reg, src, tgt, weights)
	if err != nil {
		return err
	}

	return htmlpage.Render(w, pageTemplate, pageData{
		Title:  c.o.title,
		Labels: reg.Entries(),
		Matrix: matrix,
	})
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(edges *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(edges, &buf); err != nil {
		return "", err
	}
	return out.Write("chord", buf.Bytes())
}

func buildMatrix(reg *vizkit.Registry, src, tgt []string, weights []float64) ([][]float64, error) {
	n := reg.Len()
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := range src {
		se, ok := reg.Lookup(src[i])
		if !ok {
			return nil, &vizkit.ConfigurationError{Option: "registry", Value: src[i], Detail: "label not present in the supplied registry"}
		}
		te, ok := reg.Lookup(tgt[i])
		if !ok {
			return nil, &vizkit.ConfigurationError{Option: "registry", Value: tgt[i], Detail: "label not present in the supplied registry"}
		}
		m[se.ID][te.ID] += weights[i]
	}
	return m, nil
}
