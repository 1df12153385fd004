// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particles renders a short text as a cloud of animated
// particles. The page rasterizes the text to an offscreen canvas and
// seeds one particle per sampled opaque pixel.
package particles

import (
	"bytes"
	"io"
	"strings"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/htmlpage"
)

type chartOptions struct {
	title      string
	color      string
	background string
	fontSize   int
	radius     float64
	spacing    int
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithColor sets the particle color.
func WithColor(hex string) Option {
	return func(o *chartOptions) { o.color = hex }
}

// WithBackground sets the page background color.
func WithBackground(hex string) Option {
	return func(o *chartOptions) { o.background = hex }
}

// WithFontSize sets the rasterized font size in pixels.
func WithFontSize(px int) Option {
	return func(o *chartOptions) { o.fontSize = px }
}

// WithRadius sets the particle radius in pixels.
func WithRadius(r float64) Option {
	return func(o *chartOptions) { o.radius = r }
}

// WithSpacing sets the pixel sampling step. Larger steps mean fewer
// particles.
func WithSpacing(px int) Option {
	return func(o *chartOptions) { o.spacing = px }
}

// Chart is a configured particle render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{
		title:      "Particles",
		color:      "#f2f2f2",
		background: "#000000",
		fontSize:   160,
		radius:     3,
		spacing:    8,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

type pageData struct {
	Title      string
	Text       string
	Color      string
	Background string
	FontSize   int
	Radius     float64
	Spacing    int
}

// Render writes the particle document for text to w.
func (c *Chart) Render(text string, w io.Writer) error {
	if strings.TrimSpace(text) == "" {
		return vizkit.ErrEmptyInput
	}
	if c.o.fontSize <= 0 || c.o.spacing <= 0 || c.o.radius <= 0 {
		return &vizkit.ConfigurationError{
			Option: "geometry", Value: "fontsize/spacing/radius",
			Detail: "must be positive",
		}
	}
	return htmlpage.Render(w, pageTemplate, pageData{
		Title:      c.o.title,
		Text:       text,
		Color:      c.o.color,
		Background: c.o.background,
		FontSize:   c.o.fontSize,
		Radius:     c.o.radius,
		Spacing:    c.o.spacing,
	})
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(text string, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(text, &buf); err != nil {
		return "", err
	}
	return out.Write("particles", buf.Bytes())
}
