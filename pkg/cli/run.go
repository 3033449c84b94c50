/*
Copyright © 2025 Industrial Edge Works
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/industrial-edge/bootguard/pkg/boot"
	"github.com/industrial-edge/bootguard/pkg/defaults"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
	"github.com/industrial-edge/bootguard/pkg/serializer"
	"github.com/industrial-edge/bootguard/pkg/session"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Execute a boot session to a terminal outcome",
		Description: `Execute the boot sequence: power check, thermal check, hardware init.

The environment profile is resolved from the hardware capability descriptor
(--capability). Transient aborts (power instability, failed init sub-steps)
are retried up to --max-attempts with fresh sensor readings per attempt;
thermal safety aborts are never retried.

The session report is written to stdout or --output in JSON, YAML, or
table format.

# Examples

Run against live hwmon sensors:
  bootguard run --capability 2.1-epd

Bench simulation with fixed readings:
  bootguard run --capability 2.0 --sim --sim-cpu-temp 95 --sim-voltage 12.0

Custom profile table:
  bootguard run --capability 2.1-epd --profiles-file /etc/bootguard/profiles.yaml`,
		Flags: []cli.Flag{
			capabilityFlag,
			profilesFileFlag,
			&cli.IntFlag{
				Name:  "max-attempts",
				Value: defaults.RetryMaxAttempts,
				Usage: "Maximum boot attempts per session",
			},
			&cli.DurationFlag{
				Name:  "pacing-interval",
				Value: defaults.RetryPacingInterval,
				Usage: "Minimum interval between attempt starts",
			},
			&cli.DurationFlag{
				Name:  "init-step-delay",
				Value: 0,
				Usage: "Artificial delay per init sub-step (bench testing)",
			},
			// hwmon sensor paths
			&cli.StringFlag{
				Name:  "cpu-temp-path",
				Value: "/sys/class/hwmon/hwmon0/temp1_input",
				Usage: "hwmon attribute for the CPU die temperature",
			},
			&cli.StringFlag{
				Name:  "board-temp-path",
				Value: "/sys/class/hwmon/hwmon0/temp2_input",
				Usage: "hwmon attribute for the board ambient temperature",
			},
			&cli.StringFlag{
				Name:  "voltage-path",
				Value: "/sys/class/hwmon/hwmon1/in0_input",
				Usage: "hwmon attribute for the supply rail voltage",
			},
			&cli.StringFlag{
				Name:  "current-path",
				Value: "/sys/class/hwmon/hwmon1/curr1_input",
				Usage: "hwmon attribute for the supply rail current",
			},
			// simulation
			&cli.BoolFlag{
				Name:  "sim",
				Usage: "Use fixed simulated sensor readings instead of hwmon",
			},
			&cli.IntFlag{
				Name:  "sim-cpu-temp",
				Value: 75,
				Usage: "Simulated CPU temperature in °C",
			},
			&cli.IntFlag{
				Name:  "sim-board-temp",
				Value: 70,
				Usage: "Simulated board temperature in °C",
			},
			&cli.FloatFlag{
				Name:  "sim-voltage",
				Value: 12.0,
				Usage: "Simulated rail voltage in volts",
			},
			&cli.FloatFlag{
				Name:  "sim-current",
				Value: 3.0,
				Usage: "Simulated rail current in amperes",
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

			capability := profile.ParseCapability(cmd.String("capability"))
			gw := gatewayFromCmd(cmd)

			opts := []session.Option{
				session.WithMaxAttempts(int(cmd.Int("max-attempts"))),
				session.WithPacingInterval(cmd.Duration("pacing-interval")),
			}
			if delay := cmd.Duration("init-step-delay"); delay > 0 {
				opts = append(opts, session.WithSequencer(boot.NewSequencer(gw,
					boot.WithInitializer(&boot.DefaultInitializer{StepDelay: delay}))))
			}

			sess := session.NewSession(gw, profile.NewResolver(table), capability, opts...)

			report, err := sess.Run(ctx)
			if err != nil {
				return fmt.Errorf("boot session failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				_ = ser.Close()
			}()
			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if !report.Succeeded() {
				return cli.Exit(fmt.Sprintf("boot did not complete: %s", report.Outcome), 2)
			}
			return nil
		},
	}
}

// gatewayFromCmd builds the sensor gateway the session samples from.
func gatewayFromCmd(cmd *cli.Command) sensor.Gateway {
	if cmd.Bool("sim") {
		return &sensor.StaticGateway{
			Temp: sensor.TempReading{
				CPUTempC:   int(cmd.Int("sim-cpu-temp")),
				BoardTempC: int(cmd.Int("sim-board-temp")),
			},
			Power: sensor.PowerReading{
				RailVoltage: cmd.Float("sim-voltage"),
				RailCurrent: cmd.Float("sim-current"),
			},
		}
	}
	return &sensor.FileGateway{
		CPUTempPath:   cmd.String("cpu-temp-path"),
		BoardTempPath: cmd.String("board-temp-path"),
		VoltagePath:   cmd.String("voltage-path"),
		CurrentPath:   cmd.String("current-path"),
	}
}
