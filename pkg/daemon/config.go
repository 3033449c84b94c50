// Copyright (c) 2025, Industrial Edge Works.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package daemon

import (
	"fmt"
	"os"

	"github.com/industrial-edge/bootguard/pkg/defaults"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
)

// Config holds the daemon's boot-session configuration. The diagnostics
// server reads its own configuration separately.
type Config struct {
	// Capability is the hardware capability descriptor, from
	// BOOTGUARD_CAPABILITY.
	Capability profile.Capability

	// Table is the profile table, from BOOTGUARD_PROFILES (a YAML file
	// path) or the built-ins.
	Table profile.Table

	// MaxAttempts bounds the boot session, from BOOTGUARD_MAX_ATTEMPTS.
	MaxAttempts int

	// Sensor attribute paths, from BOOTGUARD_*_PATH.
	CPUTempPath   string
	BoardTempPath string
	VoltagePath   string
	CurrentPath   string
}

// ConfigFromEnv assembles the daemon configuration from the environment.
// A missing capability descriptor is not an error: the zero capability
// resolves to the standard profile.
func ConfigFromEnv() (*Config, error) {
	table, err := profile.LoadTable(os.Getenv("BOOTGUARD_PROFILES"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Capability:    profile.ParseCapability(os.Getenv("BOOTGUARD_CAPABILITY")),
		Table:         table,
		MaxAttempts:   defaults.RetryMaxAttempts,
		CPUTempPath:   envOr("BOOTGUARD_CPU_TEMP_PATH", "/sys/class/hwmon/hwmon0/temp1_input"),
		BoardTempPath: envOr("BOOTGUARD_BOARD_TEMP_PATH", "/sys/class/hwmon/hwmon0/temp2_input"),
		VoltagePath:   envOr("BOOTGUARD_VOLTAGE_PATH", "/sys/class/hwmon/hwmon1/in0_input"),
		CurrentPath:   envOr("BOOTGUARD_CURRENT_PATH", "/sys/class/hwmon/hwmon1/curr1_input"),
	}

	if attemptsStr := os.Getenv("BOOTGUARD_MAX_ATTEMPTS"); attemptsStr != "" {
		var attempts int
		if _, err := fmt.Sscanf(attemptsStr, "%d", &attempts); err == nil && attempts > 0 {
			cfg.MaxAttempts = attempts
		}
	}

	return cfg, nil
}

// Gateway returns the hwmon-backed sensor gateway for the configured paths.
func (c *Config) Gateway() sensor.Gateway {
	return &sensor.FileGateway{
		CPUTempPath:   c.CPUTempPath,
		BoardTempPath: c.BoardTempPath,
		VoltagePath:   c.VoltagePath,
		CurrentPath:   c.CurrentPath,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
