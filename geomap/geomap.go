// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geomap plots labeled coordinates as circle markers on a
// Leaflet tile map.
package geomap

import (
	"bytes"
	"io"
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/htmlpage"
	"github.com/vizkit/vizkit/internal/tabular"
)

type chartOptions struct {
	label    string
	lat      string
	lon      string
	size     string
	scheme   string
	title    string
	tiles    string
	registry *vizkit.Registry
	logger   vizkit.Logger
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the label, latitude and longitude columns.
func WithColumns(label, lat, lon string) Option {
	return func(o *chartOptions) { o.label, o.lat, o.lon = label, lat, lon }
}

// WithSizeColumn names an optional per-marker size column.
func WithSizeColumn(size string) Option {
	return func(o *chartOptions) { o.size = size }
}

// WithScheme sets the color scheme for resolved labels.
func WithScheme(name string) Option {
	return func(o *chartOptions) { o.scheme = name }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithTiles overrides the tile layer URL template.
func WithTiles(url string) Option {
	return func(o *chartOptions) { o.tiles = url }
}

// WithRegistry supplies a previously resolved registry.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// WithLogger sets the diagnostics sink.
func WithLogger(l vizkit.Logger) Option {
	return func(o *chartOptions) { o.logger = l }
}

// Chart is a configured map render.
type Chart struct {
	o chartOptions
}

const defaultTiles = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{
		label: "label", lat: "lat", lon: "lon",
		title: "Map", tiles: defaultTiles,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

type marker struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

type pageData struct {
	Title   string
	Tiles   string
	Markers []marker
}

// Render writes the map document to w. Rows with non-finite or
// out-of-range coordinates are dropped with a warning.
func (c *Chart) Render(t *table.Table, w io.Writer) error {
	log := vizkit.EnsureLogger(c.o.logger)
	if err := tabular.Require(t, c.o.label, c.o.lat, c.o.lon); err != nil {
		return err
	}
	labels, err := tabular.Strings(t, c.o.label)
	if err != nil {
		return err
	}
	lats, err := tabular.Floats(t, c.o.lat)
	if err != nil {
		return err
	}
	lons, err := tabular.Floats(t, c.o.lon)
	if err != nil {
		return err
	}
	var sizes []float64
	if c.o.size != "" {
		if err := tabular.Require(t, c.o.size); err != nil {
			return err
		}
		if sizes, err = tabular.Floats(t, c.o.size); err != nil {
			return err
		}
	}

	reg := c.o.registry
	if reg == nil {
		reg, err = vizkit.Resolve(labels, vizkit.WithScheme(c.o.scheme))
		if err != nil {
			return err
		}
	}

	var markers []marker
	for i, l := range labels {
		if !validCoord(lats[i], lons[i]) {
			log.Printf("geomap: dropping row %d: coordinates (%v, %v) out of range", i, lats[i], lons[i])
			continue
		}
		e, ok := reg.Lookup(l)
		if !ok {
			return &vizkit.ConfigurationError{Option: "registry", Value: l, Detail: "label missing from registry"}
		}
		size := e.Size
		if sizes != nil {
			size = sizes[i]
		}
		markers = append(markers, marker{
			Label: l, Lat: lats[i], Lon: lons[i],
			Size: size, Color: e.Color,
		})
	}
	if len(markers) == 0 {
		return vizkit.ErrEmptyInput
	}

	return htmlpage.Render(w, pageTemplate, pageData{
		Title:   c.o.title,
		Tiles:   c.o.tiles,
		Markers: markers,
	})
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(t *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(t, &buf); err != nil {
		return "", err
	}
	return out.Write("geomap", buf.Bytes())
}

func validCoord(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
