// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit/internal/config"
	"github.com/vizkit/vizkit/internal/tabular"
)

// loadTable reads a CSV file into a table. The path "-" reads stdin.
func loadTable(path string) (*table.Table, error) {
	if path == "-" {
		return tabular.FromCSV(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tabular.FromCSV(f)
}

// loadConfig reads the --config file, or the zero config without one.
func loadConfig() (*config.Chart, error) {
	return config.Load(configPath)
}

// pick returns flag when set, then the config value, then def.
func pick(flag, cfg, def string) string {
	if flag != "" {
		return flag
	}
	if cfg != "" {
		return cfg
	}
	return def
}
