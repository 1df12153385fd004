// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

import "fmt"

// Entry is the resolved display record for one label. ID and Label
// are fixed at resolution time; the display fields may be replaced
// through Registry.Set.
type Entry struct {
	// ID is the label's ordinal position in the registry,
	// starting at zero. Serialized chart data refers to labels by
	// this id.
	ID int

	// Label is the raw label token.
	Label string

	// Color is the fill color as a hex string.
	Color string

	// FontColor is a contrasting text color for the fill.
	FontColor string

	// Size and Opacity are display hints passed through to the
	// rendering template.
	Size    float64
	Opacity float64
}

// Registry maps labels to display entries in a stable order. It is
// built by Resolve and handed to chart renders; a caller that wants
// color and id stability across repeated renders resolves once,
// optionally edits entries with Set, and passes the same Registry to
// every render.
type Registry struct {
	order   []string
	entries map[string]Entry
}

type resolveConfig struct {
	center  string
	scheme  string
	size    float64
	opacity float64
}

// ResolveOption configures Resolve.
type ResolveOption func(*resolveConfig)

// WithCenter moves the designated label to the end of the ordering if
// it occurs in the input. Downstream renderers treat the last label
// as the visually distinguished terminal state.
func WithCenter(label string) ResolveOption {
	return func(c *resolveConfig) { c.center = label }
}

// WithScheme selects the color scheme (see SchemeColors).
func WithScheme(name string) ResolveOption {
	return func(c *resolveConfig) { c.scheme = name }
}

// WithSize sets the default display size for every entry.
func WithSize(size float64) ResolveOption {
	return func(c *resolveConfig) { c.size = size }
}

// WithOpacity sets the default display opacity for every entry.
func WithOpacity(opacity float64) ResolveOption {
	return func(c *resolveConfig) { c.opacity = opacity }
}

// Resolve derives the distinct labels from values in first-seen order
// and assigns each an ordinal id and a deterministic color. Empty
// tokens are skipped; if nothing remains, Resolve returns
// ErrEmptyInput. Resolve is pure: it never modifies values, and
// identical inputs yield identical registries.
func Resolve(values []string, opts ...ResolveOption) (*Registry, error) {
	cfg := resolveConfig{scheme: DefaultScheme, size: 8, opacity: 0.8}
	for _, o := range opts {
		o(&cfg)
	}

	var order []string
	seen := make(map[string]bool)
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		order = append(order, v)
	}
	if len(order) == 0 {
		return nil, ErrEmptyInput
	}

	if cfg.center != "" && seen[cfg.center] {
		kept := order[:0]
		for _, v := range order {
			if v != cfg.center {
				kept = append(kept, v)
			}
		}
		order = append(kept, cfg.center)
	}

	colors, err := SchemeColors(len(order), cfg.scheme)
	if err != nil {
		return nil, err
	}

	r := &Registry{order: order, entries: make(map[string]Entry, len(order))}
	for i, label := range order {
		r.entries[label] = Entry{
			ID:        i,
			Label:     label,
			Color:     colors[i],
			FontColor: fontColorFor(colors[i]),
			Size:      cfg.size,
			Opacity:   cfg.opacity,
		}
	}
	return r, nil
}

// Len returns the number of labels in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// Labels returns the labels in registry order. The caller must not
// modify the returned slice.
func (r *Registry) Labels() []string {
	return r.order
}

// Entries returns the entries in registry order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, label := range r.order {
		out[i] = r.entries[label]
	}
	return out
}

// Lookup returns the entry for label.
func (r *Registry) Lookup(label string) (Entry, bool) {
	e, ok := r.entries[label]
	return e, ok
}

// Set replaces the display fields of one entry without touching any
// other entry. The entry's ID and Label are preserved regardless of
// what e carries. Setting an unknown label is an error; the ordering
// is fixed at resolution time.
func (r *Registry) Set(label string, e Entry) error {
	old, ok := r.entries[label]
	if !ok {
		return fmt.Errorf("unknown label %q", label)
	}
	e.ID, e.Label = old.ID, old.Label
	if e.FontColor == "" && e.Color != old.Color {
		e.FontColor = fontColorFor(e.Color)
	}
	r.entries[label] = e
	return nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		order:   append([]string(nil), r.order...),
		entries: make(map[string]Entry, len(r.entries)),
	}
	for k, v := range r.entries {
		c.entries[k] = v
	}
	return c
}
