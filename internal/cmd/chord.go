// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/chord"
)

var chordCmd = &cobra.Command{
	Use:   "chord <edges.csv>",
	Short: "Render a chord diagram from a weighted edge list",
	Long: `Reads a CSV with source, target and weight columns and renders the
directed flows between labels as a chord diagram.`,
	Args: cobra.ExactArgs(1),
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

		c := chord.New(
			chord.WithColumns(cfg.Column("source", src), cfg.Column("target", tgt), cfg.Column("weight", wgt)),
			chord.WithTitle(pick(title, cfg.Title, "Chord")),
			chord.WithScheme(pick(scheme, cfg.Scheme, "")),
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
	chordCmd.Flags().String("source", "source", "Source column")
	chordCmd.Flags().String("target", "target", "Target column")
	chordCmd.Flags().String("weight", "weight", "Weight column")
	chordCmd.Flags().String("title", "", "Chart title")
	chordCmd.Flags().String("scheme", "", "Color scheme")
	rootCmd.AddCommand(chordCmd)
}
