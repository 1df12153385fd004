// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/particles"
)

var particlesCmd = &cobra.Command{
	Use:   "particles <text>...",
	Short: "Render text as a cloud of animated particles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		color, _ := cmd.Flags().GetString("color")
		background, _ := cmd.Flags().GetString("background")
		fontSize, _ := cmd.Flags().GetInt("fontsize")
		radius, _ := cmd.Flags().GetFloat64("radius")
		spacing, _ := cmd.Flags().GetInt("spacing")
		title, _ := cmd.Flags().GetString("title")

		c := particles.New(
			particles.WithTitle(pick(title, cfg.Title, "Particles")),
			particles.WithColor(color),
			particles.WithBackground(background),
			particles.WithFontSize(fontSize),
			particles.WithRadius(radius),
			particles.WithSpacing(spacing),
		)
		path, err := c.Save(strings.Join(args, " "), newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	particlesCmd.Flags().String("color", "#f2f2f2", "Particle color")
	particlesCmd.Flags().String("background", "#000000", "Background color")
	particlesCmd.Flags().Int("fontsize", 160, "Rasterized font size in pixels")
	particlesCmd.Flags().Float64("radius", 3, "Particle radius in pixels")
	particlesCmd.Flags().Int("spacing", 8, "Pixel sampling step")
	particlesCmd.Flags().String("title", "", "Page title")
	rootCmd.AddCommand(particlesCmd)
}
