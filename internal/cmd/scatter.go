// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/scatter"
)

var scatterCmd = &cobra.Command{
	Use:   "scatter <points.csv>",
	Short: "Render an x/y scatter plot, optionally grouped by a label column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		x, _ := cmd.Flags().GetString("x")
		y, _ := cmd.Flags().GetString("y")
		label, _ := cmd.Flags().GetString("label")
		title, _ := cmd.Flags().GetString("title")
		scheme, _ := cmd.Flags().GetString("scheme")
		size, _ := cmd.Flags().GetInt("size")

		opts := []scatter.Option{
			scatter.WithColumns(cfg.Column("x", x), cfg.Column("y", y)),
			scatter.WithTitle(pick(title, cfg.Title, "Scatter")),
			scatter.WithScheme(pick(scheme, cfg.Scheme, "")),
			scatter.WithPointSize(size),
		}
		if l := cfg.Column("label", label); l != "" {
			opts = append(opts, scatter.WithLabelColumn(l))
		}

		path, err := scatter.New(opts...).Save(t, newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	scatterCmd.Flags().String("x", "x", "X column")
	scatterCmd.Flags().String("y", "y", "Y column")
	scatterCmd.Flags().String("label", "", "Label column for per-group series")
	scatterCmd.Flags().String("title", "", "Chart title")
	scatterCmd.Flags().String("scheme", "", "Color scheme")
	scatterCmd.Flags().Int("size", 8, "Point size in pixels")
	rootCmd.AddCommand(scatterCmd)
}
