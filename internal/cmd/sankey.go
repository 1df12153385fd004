// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/sankey"
)

var sankeyCmd = &cobra.Command{
	Use:   "sankey <edges.csv>",
	Short: "Render a sankey flow diagram from a weighted edge list",
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
		src, _ := cmd.Flags().GetString("source")
		tgt, _ := cmd.Flags().GetString("target")
		wgt, _ := cmd.Flags().GetString("weight")
		title, _ := cmd.Flags().GetString("title")
		scheme, _ := cmd.Flags().GetString("scheme")

		c := sankey.New(
			sankey.WithColumns(cfg.Column("source", src), cfg.Column("target", tgt), cfg.Column("weight", wgt)),
			sankey.WithTitle(pick(title, cfg.Title, "Sankey")),
			sankey.WithScheme(pick(scheme, cfg.Scheme, "")),
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
	sankeyCmd.Flags().String("source", "source", "Source column")
	sankeyCmd.Flags().String("target", "target", "Target column")
	sankeyCmd.Flags().String("weight", "weight", "Weight column")
	sankeyCmd.Flags().String("title", "", "Chart title")
	sankeyCmd.Flags().String("scheme", "", "Color scheme")
	rootCmd.AddCommand(sankeyCmd)
}
