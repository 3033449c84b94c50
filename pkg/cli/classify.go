/*
Copyright © 2025 Industrial Edge Works
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
	"github.com/industrial-edge/bootguard/pkg/serializer"
	"github.com/industrial-edge/bootguard/pkg/thermal"
)

// classification is the output document of the classify command.
type classification struct {
	Profile      string            `json:"profile" yaml:"profile"`
	CPUTempC     int               `json:"cpuTempC" yaml:"cpuTempC"`
	BoardTempC   int               `json:"boardTempC" yaml:"boardTempC"`
	EffectiveC   int               `json:"effectiveC" yaml:"effectiveC"`
	Previous     thermal.Condition `json:"previous,omitempty" yaml:"previous,omitempty"`
	Condition    thermal.Condition `json:"condition" yaml:"condition"`
	WouldProceed bool              `json:"wouldProceed" yaml:"wouldProceed"`
	Derated      bool              `json:"derated" yaml:"derated"`
}

func classifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "classify",
		EnableShellCompletion: true,
		Usage:                 "Classify temperatures against the resolved profile",
		Description: `Classify a temperature reading the way the boot sequencer would,
without running a boot session.

The profile is resolved from --capability (or taken directly via --profile).
Pass --previous to apply hysteresis from a prior critical classification.

# Examples

  bootguard classify --cpu-temp 95 --board-temp 90 --capability 2.1-epd
  bootguard classify --cpu-temp 118 --profile enhanced --previous Critical`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "cpu-temp",
				Usage:    "CPU die temperature in °C",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "board-temp",
				Value: -55,
				Usage: "Board ambient temperature in °C (defaults to the sensor floor)",
			},
			capabilityFlag,
			profilesFileFlag,
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Profile ID to classify against, bypassing capability resolution",
			},
			&cli.StringFlag{
				Name:  "previous",
				Usage: "Previous thermal condition for hysteresis (Nominal, Elevated, Critical)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			table, err := profile.LoadTable(cmd.String("profiles-file"))
			if err != nil {
				return fmt.Errorf("failed to load profile table: %w", err)
			}

			var prof profile.Profile
			if id := cmd.String("profile"); id != "" {
				p, ok := table.Get(id)
				if !ok {
					return fmt.Errorf("unknown profile: %q (known: %v)", id, table.IDs())
				}
				prof = p
			} else {
				capability := profile.ParseCapability(cmd.String("capability"))
				prof = profile.NewResolver(table).Resolve(capability)
			}

			var prev thermal.Condition
			if prevStr := cmd.String("previous"); prevStr != "" {
				c, ok := thermal.ParseCondition(prevStr)
				if !ok {
					return fmt.Errorf("unknown thermal condition: %q", prevStr)
				}
				prev = c
			}

			reading := sensor.TempReading{
				CPUTempC:   int(cmd.Int("cpu-temp")),
				BoardTempC: int(cmd.Int("board-temp")),
			}
			cond := thermal.Classify(reading, prof, prev)

			result := classification{
				Profile:      prof.ID,
				CPUTempC:     reading.CPUTempC,
				BoardTempC:   reading.BoardTempC,
				EffectiveC:   reading.Clamp().Hottest(),
				Previous:     prev,
				Condition:    cond,
				WouldProceed: cond != thermal.ConditionCritical,
				Derated:      cond == thermal.ConditionElevated,
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				_ = ser.Close()
			}()
			return ser.Serialize(ctx, result)
		},
	}
}
