// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree <edges.csv>",
	Short: "Render a collapsible tree from parent/child edges",
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
		title, _ := cmd.Flags().GetString("title")

		c := tree.New(
			tree.WithColumns(cfg.Column("source", src), cfg.Column("target", tgt)),
			tree.WithTitle(pick(title, cfg.Title, "Tree")),
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
	treeCmd.Flags().String("source", "source", "Parent column")
	treeCmd.Flags().String("target", "target", "Child column")
	treeCmd.Flags().String("title", "", "Chart title")
	rootCmd.AddCommand(treeCmd)
}
