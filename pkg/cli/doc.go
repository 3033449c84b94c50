/*
Copyright © 2025 Industrial Edge Works
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the bootguard tool.
//
// # Commands
//
// run - Execute a boot session:
//
//	bootguard run --capability 2.1-epd [--profiles-file FILE] [--max-attempts N]
//
// Resolves the environment profile from the hardware capability descriptor
// and drives the boot sequence to a terminal outcome, retrying transient
// aborts. The session report is written to stdout or --output.
//
// Sensor input comes from hwmon sysfs attributes (--cpu-temp-path and
// friends) or from fixed simulation values (--sim-cpu-temp, --sim-voltage)
// for bench testing.
//
// classify - Classify a temperature against a profile:
//
//	bootguard classify --cpu-temp 95 --board-temp 90 --capability 2.1-epd
//
// Prints the thermal condition the sequencer would observe, without running
// a boot session.
//
// profiles - List the effective profile table:
//
//	bootguard profiles [--profiles-file FILE]
//
// version - Print build information.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//
// All commands that produce output accept --output (file path, default
// stdout) and --format (json, yaml, table).
package cli
