// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/timeseries"
)

var timeseriesCmd = &cobra.Command{
	Use:     "timeseries <series.csv>",
	Aliases: []string{"ts"},
	Short:   "Render a line chart over a time axis",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		timeCol, _ := cmd.Flags().GetString("time")
		value, _ := cmd.Flags().GetString("value")
		label, _ := cmd.Flags().GetString("label")
		layout, _ := cmd.Flags().GetString("time-layout")
		title, _ := cmd.Flags().GetString("title")
		scheme, _ := cmd.Flags().GetString("scheme")

		opts := []timeseries.Option{
			timeseries.WithColumns(cfg.Column("time", timeCol), cfg.Column("value", value)),
			timeseries.WithTimeLayout(pick(layout, cfg.TimeLayout, timeseries.DefaultTimeLayout)),
			timeseries.WithTitle(pick(title, cfg.Title, "Time series")),
			timeseries.WithScheme(pick(scheme, cfg.Scheme, "")),
		}
		if l := cfg.Column("label", label); l != "" {
			opts = append(opts, timeseries.WithLabelColumn(l))
		}

		path, err := timeseries.New(opts...).Save(t, newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	timeseriesCmd.Flags().String("time", "datetime", "Timestamp column")
	timeseriesCmd.Flags().String("value", "value", "Value column")
	timeseriesCmd.Flags().String("label", "", "Label column for per-series lines")
	timeseriesCmd.Flags().String("time-layout", "", "Go reference layout for string timestamps")
	timeseriesCmd.Flags().String("title", "", "Chart title")
	timeseriesCmd.Flags().String("scheme", "", "Color scheme")
	rootCmd.AddCommand(timeseriesCmd)
}
