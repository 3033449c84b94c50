/*
Copyright © 2025 Industrial Edge Works
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/industrial-edge/bootguard/pkg/logging"
	"github.com/industrial-edge/bootguard/pkg/serializer"
)

const (
	name           = "bootguard"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// shared flags
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}

	profilesFileFlag = &cli.StringFlag{
		Name:    "profiles-file",
		Usage:   "Path to a YAML profile table (default: built-in profiles)",
		Sources: cli.EnvVars("BOOTGUARD_PROFILES"),
	}

	capabilityFlag = &cli.StringFlag{
		Name:    "capability",
		Aliases: []string{"c"},
		Usage:   "Hardware capability descriptor, e.g. 2.1-epd",
		Sources: cli.EnvVars("BOOTGUARD_CAPABILITY"),
	}
)

// New assembles the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Boot sequencer for industrial edge controllers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			runCmd(),
			classifyCmd(),
			profilesCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the CLI with signal-driven cancellation. It is called by
// main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
