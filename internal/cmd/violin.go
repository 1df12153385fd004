// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/violin"
)

var violinCmd = &cobra.Command{
	Use:   "violin <samples.csv>",
	Short: "Render per-category value distributions as violin plots",
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
		label, _ := cmd.Flags().GetString("label")
		value, _ := cmd.Flags().GetString("value")
		title, _ := cmd.Flags().GetString("title")
		scheme, _ := cmd.Flags().GetString("scheme")
		samples, _ := cmd.Flags().GetInt("samples")

		c := violin.New(
			violin.WithColumns(cfg.Column("label", label), cfg.Column("value", value)),
			violin.WithTitle(pick(title, cfg.Title, "Violin")),
			violin.WithScheme(pick(scheme, cfg.Scheme, "")),
			violin.WithSamples(samples),
			violin.WithLogger(cliLogger()),
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
	violinCmd.Flags().String("label", "x", "Category column")
	violinCmd.Flags().String("value", "y", "Value column")
	violinCmd.Flags().String("title", "", "Chart title")
	violinCmd.Flags().String("scheme", "", "Color scheme")
	violinCmd.Flags().Int("samples", 64, "Density curve sample count")
	rootCmd.AddCommand(violinCmd)
}
