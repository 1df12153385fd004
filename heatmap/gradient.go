// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"

	"github.com/vizkit/vizkit"
)

// Continuous scales for cell values, interpolated with go-gg's
// sRGB-aware gradient.
var gradients = map[string]palette.RGBGradient{
	"bluered": {Colors: []color.RGBA{
		{0x20, 0x4a, 0x87, 0xff}, {0xf7, 0xf7, 0xf7, 0xff}, {0xc0, 0x18, 0x2c, 0xff},
	}},
	"viridis": {Colors: []color.RGBA{
		{0x44, 0x01, 0x54, 0xff}, {0x3b, 0x52, 0x8b, 0xff}, {0x21, 0x91, 0x8c, 0xff},
		{0x5e, 0xc9, 0x62, 0xff}, {0xfd, 0xe7, 0x25, 0xff},
	}},
	"greys": {Colors: []color.RGBA{
		{0xf7, 0xf7, 0xf7, 0xff}, {0x25, 0x25, 0x25, 0xff},
	}},
}

// DefaultGradient is used when a chart is not configured with one.
const DefaultGradient = "bluered"

// GradientStops samples the named gradient at k evenly spaced
// positions and returns hex stops for the chart's value scale.
func GradientStops(name string, k int) ([]string, error) {
	g, ok := gradients[name]
	if !ok {
		return nil, &vizkit.ConfigurationError{Option: "gradient", Value: name}
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		c := color.RGBAModel.Convert(g.Map(float64(i) / float64(k-1))).(color.RGBA)
		out[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return out, nil
}
