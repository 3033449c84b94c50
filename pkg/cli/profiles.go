/*
Copyright © 2025 Industrial Edge Works
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/serializer"
)

// profileListing is the output document of the profiles command.
type profileListing struct {
	Source   string            `json:"source" yaml:"source"`
	Profiles []profile.Profile `json:"profiles" yaml:"profiles"`
}

func profilesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "profiles",
		EnableShellCompletion: true,
		Usage:                 "List the effective profile table",
		Description: `List the environment profiles the resolver selects from, either the
built-in table or one loaded from --profiles-file. The table is validated
on load, so a listing doubles as a configuration check.`,
		Flags: []cli.Flag{
			profilesFileFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			path := cmd.String("profiles-file")
			table, err := profile.LoadTable(path)
			if err != nil {
				return fmt.Errorf("failed to load profile table: %w", err)
			}

			profiles := table.Profiles()
			sort.Slice(profiles, func(i, j int) bool {
				return profiles[i].ID < profiles[j].ID
			})

			source := "built-in"
			if path != "" {
				source = path
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				_ = ser.Close()
			}()
			return ser.Serialize(ctx, profileListing{
				Source:   source,
				Profiles: profiles,
			})
		},
	}
}
