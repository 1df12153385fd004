// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/heatmap"
	"github.com/vizkit/vizkit/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix <grid.csv>",
	Short: "Render a dense matrix heatmap",
	Long: `Reads a CSV laid out as a dense grid: the header row names the
columns, the first field of each following row names that row, and the
remaining fields are numeric cell values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rows, cols, grid, err := readGrid(args[0])
		if err != nil {
			return err
		}
		title, _ := cmd.Flags().GetString("title")
		gradient, _ := cmd.Flags().GetString("gradient")

		c := matrix.New(
			matrix.WithTitle(pick(title, cfg.Title, "Matrix")),
			matrix.WithGradient(gradient),
		)
		path, err := c.Save(rows, cols, grid, newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

// readGrid parses the dense-grid CSV layout.
func readGrid(path string) (rows, cols []string, grid [][]float64, err error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, err
		}
		defer f.Close()
		r = f
	}
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(recs) < 2 || len(recs[0]) < 2 {
		return nil, nil, nil, vizkit.ErrEmptyInput
	}
	cols = recs[0][1:]
	for i, rec := range recs[1:] {
		rows = append(rows, rec[0])
		vals := make([]float64, len(rec)-1)
		for j, s := range rec[1:] {
			vals[j], err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("row %d, column %q: %v", i+1, cols[j], err)
			}
		}
		grid = append(grid, vals)
	}
	return rows, cols, grid, nil
}

func init() {
	matrixCmd.Flags().String("title", "", "Chart title")
	matrixCmd.Flags().String("gradient", heatmap.DefaultGradient, "Color gradient (bluered, viridis, greys)")
	rootCmd.AddCommand(matrixCmd)
}
