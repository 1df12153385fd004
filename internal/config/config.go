// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads chart options from a YAML file so a CLI run
// can carry settings that do not fit on the command line.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Chart holds the options shared by the chart subcommands. Zero
// values mean "use the chart's default".
type Chart struct {
	Title  string            `yaml:"title"`
	Scheme string            `yaml:"scheme"`
	Center string            `yaml:"center"`
	Note   string            `yaml:"note"`
	Colors map[string]string `yaml:"colors"`

	// Moving-bubbles specific.
	Policy     string `yaml:"policy"`
	Unit       string `yaml:"unit"`
	TimeLayout string `yaml:"time_layout"`

	// Column name overrides, chart-specific meaning.
	Columns map[string]string `yaml:"columns"`
}

// Load reads a chart config from path. A missing path returns the
// zero config.
func Load(path string) (*Chart, error) {
	if path == "" {
		return &Chart{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Column returns the override for key, or def when unset.
func (c *Chart) Column(key, def string) string {
	if v, ok := c.Columns[key]; ok && v != "" {
		return v
	}
	return def
}
