// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains all CLI commands for vizkit.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit"
)

// Version is the current version of vizkit.
var Version = "0.1.0"

var (
	outputPath string
	overwrite  bool
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "vizkit",
	Short: "Render interactive HTML charts from CSV data",
	Long: `vizkit turns tabular data into standalone interactive HTML pages.

Each subcommand reads a CSV file (use - for stdin), renders one chart
type and writes a self-contained HTML document. Without --output the
document lands in the system temp directory.

Examples:
  vizkit chord edges.csv --output chord.html
  vizkit movingbubbles events.csv --policy samplewise --unit minutes
  vizkit heatmap cells.csv --gradient viridis
  cat points.csv | vizkit scatter - --label cluster

See 'vizkit <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vizkit:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output HTML path (default: temp directory)")
	rootCmd.PersistentFlags().BoolVar(&overwrite, "overwrite", false, "Replace the output file if it exists")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML chart config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// cliLogger returns the diagnostics sink selected by --verbose.
func cliLogger() vizkit.Logger {
	if verbose {
		return log.New(os.Stderr, "vizkit: ", 0)
	}
	return vizkit.NopLogger()
}

// newOutput builds the Output shared by every chart subcommand.
func newOutput() vizkit.Output {
	return vizkit.Output{Path: outputPath, Overwrite: overwrite, Logger: cliLogger()}
}

// report prints where the chart landed.
func report(path string) {
	fmt.Println("wrote", path)
}
