// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List the available chart types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var names []string
		for _, c := range rootCmd.Commands() {
			if c.Name() == "charts" || c.Name() == "help" || c.Name() == "completion" {
				continue
			}
			names = append(names, fmt.Sprintf("%-14s %s", c.Name(), c.Short))
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}
