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

// Package server exposes the daemon's diagnostics surface over HTTP.
//
// The server is strictly read-only: it reports the outcome of the boot
// session and the daemon's health, and never influences the boot sequence
// itself. Endpoints:
//
//	GET /            service banner and route listing
//	GET /healthz     liveness
//	GET /readyz      readiness (503 until the boot session finishes)
//	GET /v1/report   the boot session report
//	GET /metrics     Prometheus metrics
//
// API requests pass through a middleware chain providing request IDs,
// rate limiting, panic recovery, request logging, and RED metrics.
package server
