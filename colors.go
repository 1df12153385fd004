// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Discrete schemes. The named lists follow the usual qualitative
// palettes; "hsv" spaces hues evenly around the wheel for any count.
var schemes = map[string][]string{
	"set1": {
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	},
	"set2": {
		"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
		"#ffd92f", "#e5c494", "#b3b3b3",
	},
	"paired": {
		"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99",
		"#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a",
		"#ffff99", "#b15928",
	},
	"tab20": {
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	},
}

// DefaultScheme is used when a chart is not configured with one.
const DefaultScheme = "tab20"

// SchemeColors returns n hex colors drawn from the named scheme. The
// result is a pure function of (n, scheme): the same inputs always
// produce the same colors. For counts beyond a scheme's base size the
// base colors are blended in Luv space rather than cycled, so every
// label still gets a distinct color.
func SchemeColors(n int, scheme string) ([]string, error) {
	if scheme == "" {
		scheme = DefaultScheme
	}
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if scheme == "hsv" {
		out := make([]string, n)
		for i := 0; i < n; i++ {
			h := 360 * float64(i) / float64(n)
			out[i] = colorful.Hsv(h, 0.85, 0.90).Hex()
		}
		return out, nil
	}
	base, ok := schemes[scheme]
	if !ok {
		return nil, &ConfigurationError{Option: "color scheme", Value: scheme}
	}
	if n <= len(base) {
		out := make([]string, n)
		copy(out, base[:n])
		return out, nil
	}
	return blendScheme(base, n), nil
}

func blendScheme(base []string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * float64(len(base)-1)
		lo := int(math.Floor(pos))
		if lo >= len(base)-1 {
			out[i] = base[len(base)-1]
			continue
		}
		a, _ := colorful.Hex(base[lo])
		b, _ := colorful.Hex(base[lo+1])
		out[i] = a.BlendLuv(b, pos-float64(lo)).Hex()
	}
	return out
}

// fontColorFor picks black or white text for a fill color, by
// perceived luminance.
func fontColorFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	if 0.299*c.R+0.587*c.G+0.114*c.B < 0.5 {
		return "#ffffff"
	}
	return "#000000"
}
