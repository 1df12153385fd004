// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/geomap"
)

var geomapCmd = &cobra.Command{
	Use:   "geomap <markers.csv>",
	Short: "Plot labeled coordinates on a tile map",
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
		lat, _ := cmd.Flags().GetString("lat")
		lon, _ := cmd.Flags().GetString("lon")
		size, _ := cmd.Flags().GetString("size")
		title, _ := cmd.Flags().GetString("title")
		scheme, _ := cmd.Flags().GetString("scheme")
		tiles, _ := cmd.Flags().GetString("tiles")

		opts := []geomap.Option{
			geomap.WithColumns(cfg.Column("label", label), cfg.Column("lat", lat), cfg.Column("lon", lon)),
			geomap.WithTitle(pick(title, cfg.Title, "Map")),
			geomap.WithScheme(pick(scheme, cfg.Scheme, "")),
			geomap.WithLogger(cliLogger()),
		}
		if s := cfg.Column("size", size); s != "" {
			opts = append(opts, geomap.WithSizeColumn(s))
		}
		if tiles != "" {
			opts = append(opts, geomap.WithTiles(tiles))
		}

		path, err := geomap.New(opts...).Save(t, newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	geomapCmd.Flags().String("label", "label", "Marker label column")
	geomapCmd.Flags().String("lat", "lat", "Latitude column")
	geomapCmd.Flags().String("lon", "lon", "Longitude column")
	geomapCmd.Flags().String("size", "", "Optional marker size column")
	geomapCmd.Flags().String("title", "", "Chart title")
	geomapCmd.Flags().String("scheme", "", "Color scheme")
	geomapCmd.Flags().String("tiles", "", "Tile layer URL template")
	rootCmd.AddCommand(geomapCmd)
}
