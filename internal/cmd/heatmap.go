// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/heatmap"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap <cells.csv>",
	Short: "Render a heatmap from long-form (x, y, value) rows",
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
		value, _ := cmd.Flags().GetString("value")
		title, _ := cmd.Flags().GetString("title")
		gradient, _ := cmd.Flags().GetString("gradient")

		c := heatmap.New(
			heatmap.WithColumns(cfg.Column("x", x), cfg.Column("y", y), cfg.Column("value", value)),
			heatmap.WithTitle(pick(title, cfg.Title, "Heatmap")),
			heatmap.WithGradient(gradient),
		)
		path, err := c.Save(t, newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	heatmapCmd.Flags().String("x", "x", "Column axis column")
	heatmapCmd.Flags().String("y", "y", "Row axis column")
	heatmapCmd.Flags().String("value", "value", "Cell value column")
	heatmapCmd.Flags().String("title", "", "Chart title")
	heatmapCmd.Flags().String("gradient", heatmap.DefaultGradient, "Color gradient (bluered, viridis, greys)")
	rootCmd.AddCommand(heatmapCmd)
}
