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

// Package session coordinates retries across boot attempts within one
// power-on cycle.
//
// A session owns the attempt counter and drives the boot sequencer up to a
// bounded number of attempts, pacing attempt starts and re-resolving the
// environment profile and sensor readings before each one. Power and
// hardware-init aborts are retried; thermal aborts and successes end the
// session immediately, and the final attempt's outcome is reported as-is.
package session
