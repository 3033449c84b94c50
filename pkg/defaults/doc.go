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

// Package defaults provides centralized configuration constants for bootguard.
//
// This package defines timeout values, retry parameters, and other
// configuration defaults used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/industrial-edge/bootguard/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.SensorReadTimeout)
//	defer cancel()
//
// # Guidelines
//
// When choosing timeout values:
//
//   - Sensor reads: short (2s) so an unreadable sensor degrades to a
//     conservative classification quickly instead of stalling the sequence
//   - Init sub-steps: 10s, bounded so a wedged peripheral aborts the attempt
//   - Full attempt: 60s hard bound from power check to terminal outcome
//   - Server shutdown: 30s for graceful shutdown
package defaults
