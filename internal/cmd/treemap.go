// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/treemap"
)

var treemapCmd = &cobra.Command{
	Use:   "treemap <edges.csv>",
	Short: "Render a treemap from weighted parent/child edges",
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

		c := treemap.New(
			treemap.WithColumns(cfg.Column("source", src), cfg.Column("target", tgt), cfg.Column("weight", wgt)),
			treemap.WithTitle(pick(title, cfg.Title, "Treemap")),
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
	treemapCmd.Flags().String("source", "source", "Parent column")
	treemapCmd.Flags().String("target", "target", "Child column")
	treemapCmd.Flags().String("weight", "weight", "Weight column")
	treemapCmd.Flags().String("title", "", "Chart title")
	rootCmd.AddCommand(treemapCmd)
}
