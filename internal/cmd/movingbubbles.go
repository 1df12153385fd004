// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/internal/tabular"
	"github.com/vizkit/vizkit/movingbubbles"
)

var movingbubblesCmd = &cobra.Command{
	Use:     "movingbubbles <events.csv>",
	Aliases: []string{"mb"},
	Short:   "Render animated bubbles moving between states over time",
	Long: `Reads timestamped (entity, time, state) observations, standardizes
them into per-state dwell intervals and renders a D3 animation of
entities moving between state clusters.

The --policy flag picks how intervals are derived:
  none        pair each observation with the entity's next one
  samplewise  per-entity differences after sorting by entity and time
  relative    global adjacent differences across all entities
  minimum     elapsed time since the dataset's first observation`,
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

		policyFlag, _ := cmd.Flags().GetString("policy")
		unitFlag, _ := cmd.Flags().GetString("unit")
		policy, err := movingbubbles.ParsePolicy(pick(policyFlag, cfg.Policy, ""))
		if err != nil {
			return err
		}
		unit, err := movingbubbles.ParseUnit(pick(unitFlag, cfg.Unit, ""))
		if err != nil {
			return err
		}

		entity, _ := cmd.Flags().GetString("entity")
		timeCol, _ := cmd.Flags().GetString("time")
		state, _ := cmd.Flags().GetString("state")
		layout, _ := cmd.Flags().GetString("time-layout")
		title, _ := cmd.Flags().GetString("title")
		note, _ := cmd.Flags().GetString("note")
		center, _ := cmd.Flags().GetString("center")
		scheme, _ := cmd.Flags().GetString("scheme")

		entity = cfg.Column("entity", entity)
		timeCol = cfg.Column("time", timeCol)
		state = cfg.Column("state", state)

		opts := []movingbubbles.Option{
			movingbubbles.WithColumns(entity, timeCol, state),
			movingbubbles.WithPolicy(policy),
			movingbubbles.WithUnit(unit),
			movingbubbles.WithTimeLayout(pick(layout, cfg.TimeLayout, movingbubbles.DefaultTimeLayout)),
			movingbubbles.WithTitle(pick(title, cfg.Title, "Moving bubbles")),
			movingbubbles.WithNote(pick(note, cfg.Note, "")),
			movingbubbles.WithCenter(pick(center, cfg.Center, "")),
			movingbubbles.WithScheme(pick(scheme, cfg.Scheme, "")),
			movingbubbles.WithLogger(cliLogger()),
		}

		// Config color pins need a pre-resolved registry.
		if len(cfg.Colors) > 0 {
			states, err := tabular.Strings(t, state)
			if err != nil {
				return err
			}
			reg, err := vizkit.Resolve(states,
				vizkit.WithCenter(pick(center, cfg.Center, "")),
				vizkit.WithScheme(pick(scheme, cfg.Scheme, "")))
			if err != nil {
				return err
			}
			for label, hex := range cfg.Colors {
				if err := reg.Set(label, vizkit.Entry{Color: hex}); err != nil {
					return err
				}
			}
			opts = append(opts, movingbubbles.WithRegistry(reg))
		}

		path, err := movingbubbles.New(opts...).Save(t, newOutput())
		if err != nil {
			return err
		}
		report(path)
		return nil
	},
}

func init() {
	movingbubblesCmd.Flags().String("entity", "sample_id", "Entity column")
	movingbubblesCmd.Flags().String("time", "datetime", "Timestamp column")
	movingbubblesCmd.Flags().String("state", "state", "State column")
	movingbubblesCmd.Flags().String("policy", "", "Standardization policy (none, samplewise, relative, minimum)")
	movingbubblesCmd.Flags().String("unit", "", "Dwell time unit (seconds, minutes, days)")
	movingbubblesCmd.Flags().String("time-layout", "", "Go reference layout for string timestamps")
	movingbubblesCmd.Flags().String("title", "", "Chart title")
	movingbubblesCmd.Flags().String("note", "", "Chart note")
	movingbubblesCmd.Flags().String("center", "", "State pinned to the center cluster")
	movingbubblesCmd.Flags().String("scheme", "", "Color scheme")
	rootCmd.AddCommand(movingbubblesCmd)
}
