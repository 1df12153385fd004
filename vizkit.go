// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vizkit provides the shared core for building stand-alone
// interactive HTML charts from tabular data.
//
// Each chart family lives in its own package (movingbubbles, chord,
// sankey, heatmap, ...) and follows the same shape: construct a chart
// value with New and functional options, then Render it to an
// io.Writer or Save it through an Output. This package holds what all
// of them share: the label Registry that assigns ordinal ids and
// display colors to discrete labels, the color schemes, the error
// taxonomy, and the output-file semantics.
//
// Chart input is a *table.Table from github.com/aclements/go-gg/table
// with caller-named columns. Charts never mutate their input; the
// supported workflow is to build a table once, render, adjust the
// Registry or the data, and render again.
package vizkit
