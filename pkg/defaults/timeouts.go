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

package defaults

import "time"

// Sensor timeouts for measurement acquisition.
const (
	// SensorReadTimeout is the default timeout for a single sensor read.
	// Reads exceeding this are surfaced as SENSOR_UNAVAILABLE and mapped to
	// the most conservative classification, never treated as nominal.
	SensorReadTimeout = 2 * time.Second

	// SnapshotTimeout is the timeout for capturing a full measurement
	// snapshot (both temperature probes plus the power rail).
	SnapshotTimeout = 5 * time.Second
)

// Boot sequencing timeouts and retry parameters.
const (
	// InitStepTimeout is the timeout for a single hardware init sub-step.
	InitStepTimeout = 10 * time.Second

	// AttemptTimeout bounds a complete boot attempt from power check to
	// terminal outcome.
	AttemptTimeout = 60 * time.Second

	// RetryMaxAttempts is the default bound on boot attempts per session.
	RetryMaxAttempts = 3

	// RetryPacingInterval is the default minimum interval between the start
	// of consecutive boot attempts.
	RetryPacingInterval = 500 * time.Millisecond
)

// Server timeouts for the diagnostics HTTP server.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Daemon supervision timeouts.
const (
	// WatchdogInterval is the maximum spacing between systemd watchdog
	// keepalives, whatever WatchdogSec the unit configures.
	WatchdogInterval = 15 * time.Second
)
