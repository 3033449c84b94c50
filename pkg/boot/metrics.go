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

package boot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Boot attempt metrics
	attemptTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bootguard_boot_attempts_total",
			Help: "Total number of boot attempts by terminal outcome",
		},
		[]string{"outcome"},
	)

	attemptDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bootguard_boot_attempt_duration_seconds",
			Help:    "Time from power check to terminal outcome",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	stateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bootguard_boot_state_duration_seconds",
			Help:    "Time spent per boot state",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"state"},
	)

	initStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bootguard_init_step_duration_seconds",
			Help:    "Time taken by individual hardware init sub-steps",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"step"}, // cpu, memory, io
	)

	deratedBootTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bootguard_derated_boots_total",
			Help: "Total number of boots completed in derated mode",
		},
	)
)
