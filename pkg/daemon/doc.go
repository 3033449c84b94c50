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

// Package daemon wires the boot session and the diagnostics server into
// the long-running bootguardd process.
//
// On startup the daemon runs one boot session against the hwmon sensors,
// publishes the report on the diagnostics HTTP server, and signals
// readiness and session outcome to systemd via sd_notify. The process then
// keeps serving diagnostics until terminated, servicing the systemd
// watchdog when one is configured.
//
// Configuration is environment-driven: BOOTGUARD_CAPABILITY,
// BOOTGUARD_PROFILES, BOOTGUARD_MAX_ATTEMPTS, and BOOTGUARD_*_PATH for the
// hwmon attributes.
package daemon
