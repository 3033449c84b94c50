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

package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Session metrics
	sessionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bootguard_sessions_total",
			Help: "Total number of boot sessions by final outcome",
		},
		[]string{"outcome"},
	)

	sessionAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bootguard_session_attempts",
			Help:    "Number of boot attempts taken per session",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	sessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bootguard_session_duration_seconds",
			Help:    "Time from session start to final outcome",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bootguard_session_retries_total",
			Help: "Total number of retried attempts by triggering outcome",
		},
		[]string{"outcome"},
	)

	sessionCanceledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bootguard_sessions_canceled_total",
			Help: "Total number of sessions canceled between attempts",
		},
	)
)
