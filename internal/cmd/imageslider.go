// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit/imageslider"
)

var imagesliderCmd = &cobra.Command{
	Use:   "imageslider <before> <after>",
	Short: "Render a before/after image comparison slider",
	Long: `Reads two PNG or JPEG images and renders a page with a draggable
divider between them. Both images are inlined, so the output is a
single self-contained file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		width, _ := cmd.Flags().GetInt("width")
		quality, _ := cmd.Flags().GetInt("quality")
		title, _ := cmd.Flags().GetString("title")

		c := imageslider.New(
			imageslider.WithTitle(pick(title, cfg.Title, "Image slider")),
			imageslider.WithWidth(width),
			imageslider.WithQuality(quality),
		)

		var buf bytes.Buffer
		if err := c.RenderFiles(args[0], args[1], &buf); err != nil {
			return err
		}
		path, err := newOutput().Write("imageslider", buf.Bytes())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	imagesliderCmd.Flags().Int("width", 800, "Frame width in pixels")
	imagesliderCmd.Flags().Int("quality", 85, "JPEG re-encoding quality")
	imagesliderCmd.Flags().String("title", "", "Page title")
	rootCmd.AddCommand(imagesliderCmd)
}
