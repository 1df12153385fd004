// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imageslider renders a before/after image comparison with a
// draggable divider. Both images are scaled to a shared frame and
// inlined into the page as data URIs, so the output file is
// self-contained.
package imageslider

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/htmlpage"
)

type chartOptions struct {
	title   string
	width   int
	quality int
}

// Option configures a Chart.
type Option func(*chartOptions)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(o *chartOptions) { o.title = title }
}

// WithWidth sets the output frame width in pixels. Height follows the
// before image's aspect ratio.
func WithWidth(px int) Option {
	return func(o *chartOptions) { o.width = px }
}

// WithQuality sets the JPEG re-encoding quality (1-100).
func WithQuality(q int) Option {
	return func(o *chartOptions) { o.quality = q }
}

// Chart is a configured slider render.
type Chart struct {
	o chartOptions
}

// New builds a chart with the given options.
func New(opts ...Option) *Chart {
	o := chartOptions{title: "Image slider", width: 800, quality: 85}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{o: o}
}

type pageData struct {
	Title  string
	Width  int
	Height int
	// data: URIs are stripped by contextual autoescaping unless
	// marked safe explicitly.
	Before template.URL
	After  template.URL
}

// Render decodes the two images, scales them to the frame and writes
// the slider document to w.
func (c *Chart) Render(before, after io.Reader, w io.Writer) error {
	if c.o.width <= 0 {
		return &vizkit.ConfigurationError{Option: "width", Value: fmt.Sprint(c.o.width), Detail: "must be positive"}
	}
	if c.o.quality < 1 || c.o.quality > 100 {
		return &vizkit.ConfigurationError{Option: "quality", Value: fmt.Sprint(c.o.quality), Detail: "must be in 1..100"}
	}

	bimg, err := decode("before", before)
	if err != nil {
		return err
	}
	aimg, err := decode("after", after)
	if err != nil {
		return err
	}

	// The before image fixes the frame shape.
	bb := bimg.Bounds()
	height := c.o.width * bb.Dy() / bb.Dx()
	if height <= 0 {
		height = 1
	}

	buri, err := c.encode(scale(bimg, c.o.width, height))
	if err != nil {
		return err
	}
	auri, err := c.encode(scale(aimg, c.o.width, height))
	if err != nil {
		return err
	}

	return htmlpage.Render(w, pageTemplate, pageData{
		Title:  c.o.title,
		Width:  c.o.width,
		Height: height,
		Before: buri,
		After:  auri,
	})
}

// RenderFiles is Render for on-disk images.
func (c *Chart) RenderFiles(beforePath, afterPath string, w io.Writer) error {
	bf, err := os.Open(beforePath)
	if err != nil {
		return err
	}
	defer bf.Close()
	af, err := os.Open(afterPath)
	if err != nil {
		return err
	}
	defer af.Close()
	return c.Render(bf, af, w)
}

// Save renders the chart and writes it through out.
func (c *Chart) Save(before, after io.Reader, out vizkit.Output) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(before, after, &buf); err != nil {
		return "", err
	}
	return out.Write("imageslider", buf.Bytes())
}

func decode(which string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &vizkit.ConfigurationError{Option: which, Value: "image", Detail: err.Error()}
	}
	return img, nil
}

func scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func (c *Chart) encode(img image.Image) (template.URL, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.o.quality}); err != nil {
		return "", err
	}
	return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
