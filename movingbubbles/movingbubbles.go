// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package movingbubbles renders a log of discrete (entity, timestamp,
// state) observations as an animated bubble chart: one bubble per
// entity, drifting between state clusters on the schedule derived by
// Standardize.
package movingbubbles

import (
	"bytes"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/htmlpage"
	"github.com/vizkit/vizkit/internal/tabular"
)

// ColorMethod selects what a bubble's color encodes.
type ColorMethod string

const (
	// ColorByState colors every bubble by the state it currently
	// occupies.
	ColorByState ColorMethod = "state"

	// ColorByNode gives each entity a fixed color of its own.
	ColorByNode ColorMethod = "node"
)

type chartOptions struct {
	std         Options
	title       string
	note        string
	center      string
	scheme      string
	colorMethod ColorMethod
	damper      float64
	speed       map[string]int
	registry    *vizkit.Registry
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithColumns names the entity, timestamp and state columns.
func WithColumns(entity, timestamp, state string) Option {
	return func(o *chartOptions) {
		o.std.Entity, o.std.Time, o.std.State = entity, timestamp, state
	}
}

// WithPolicy sets the delta standardization policy.
func WithPolicy(p Policy) Option {
	return func(o *chartOptions) { o.std.Policy = p }
}

// WithUnit sets the time unit for durations.
func WithUnit(u Unit) Option {
	return func(o *chartOptions) { o.std.Unit = u }
}

// WithTimeLayout sets the Go reference layout for string timestamps.
func WithTimeLayout(layout string) Option {
	return func(o *chartOptions) { o.std.TimeLayout = layout }
}

// WithCenter pins the named state last in the registry so the
// renderer places it at the center of the cluster ring.
func WithCenter(state string) Option {
	return func(o *chartOptions) { o.center = state }
}

// WithScheme sets the color scheme for resolved labels.
func WithScheme(name string) Option {
	return func(o *chartOptions) { o.scheme = name }
}

// WithColorMethod sets what bubble color encodes.
func WithColorMethod(m ColorMethod) Option {
	return func(o *chartOptions) { o.colorMethod = m }
}

// WithDamper sets the client-side animation damping factor. The
// value is passed through to the template untouched.
func WithDamper(d float64) Option {
	return func(o *chartOptions) { o.damper = d }
}

// WithSpeed replaces the named animation speeds (milliseconds per
// tick). The map is passed through to the template untouched.
func WithSpeed(speed map[string]int) Option {
	return func(o *chartOptions) { o.speed = speed }
}

// WithRegistry supplies a previously resolved registry, preserving
// state ids and colors across repeated renders of the same dataset.
func WithRegistry(r *vizkit.Registry) Option {
	return func(o *chartOptions) { o.registry = r }
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithNote sets the free-form note shown under the chart.
func WithNote(note string) Option {
	return func(o *chartOptions) { o.note = note }
}

// WithLogger sets the diagnostics sink.
func WithLogger(l vizkit.Logger) Option {
	return func(o *chartOptions) { o.std.Logger = l }
}

// Chart is a configured moving-bubbles render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{
		title:       "Moving bubbles",
		colorMethod: ColorByState,
		damper:      1,
		speed:       map[string]int{"slow": 1000, "medium": 200, "fast": 50},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

type pageData struct {
	Title      string
	Note       string
	States     []vizkit.Entry
	Series     []entitySeries
	NodeColors map[string]string
	Damper     float64
	Speed      map[string]int
	UnitLabel  string
}

// Render standardizes the observation table, resolves state labels,
// and writes the complete chart document to w.
func (c *Chart) Render(t *table.Table, w io.Writer) error {
	if c.o.colorMethod != ColorByState && c.o.colorMethod != ColorByNode {
		return &vizkit.ConfigurationError{Option: "color method", Value: string(c.o.colorMethod)}
	}

	std, err := Standardize(t, c.o.std)
	if err != nil {
		return err
	}
	o := c.o.std.withDefaults()

	reg := c.o.registry
	if reg == nil {
		states, err := tabular.Strings(std, o.State)
		if err != nil {
			return err
		}
		reg, err = vizkit.Resolve(states,
			vizkit.WithCenter(c.o.center), vizkit.WithScheme(c.o.scheme))
		if err != nil {
			return err
		}
	}

	series, err := serializeStates(std, o, reg)
	if err != nil {
		return err
	}

	var nodeColors map[string]string
	if c.o.colorMethod == ColorByNode {
		ids := make([]string, len(series))
		for i, s := range series {
			ids[i] = s.ID
		}
		nodeReg, err := vizkit.Resolve(ids, vizkit.WithScheme(c.o.scheme))
		if err != nil {
			return err
		}
		nodeColors = make(map[string]string, nodeReg.Len())
		for _, e := range nodeReg.Entries() {
			nodeColors[e.Label] = e.Color
		}
	}

	return htmlpage.Render(w, pageTemplate, pageData{
		Title:      c.o.title,
		Note:       c.o.note,
		States:     reg.Entries(),
		Series:     series,
		NodeColors: nodeColors,
		Damper:     c.o.damper,
		Speed:      c.o.speed,
		UnitLabel:  o.Unit.String(),
	})
}

// Save renders the chart and writes it through out, returning the
// path written.
func (c *Chart) Save(t *table.Table, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(t, &buf); err != nil {
		return "", err
	}
	return out.Write("movingbubbles", buf.Bytes())
}
