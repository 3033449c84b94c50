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

package thermal

import (
	"log/slog"

	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
)

// Condition is the thermal classification of a measurement against the
// active profile. Conditions are derived, never stored long-term, and
// recomputed on every attempt.
type Condition string

const (
	// ConditionUnknown is the zero condition, used as the previous
	// condition on the first reading of an attempt (no hysteresis applies).
	ConditionUnknown Condition = ""

	// ConditionNominal permits a full boot.
	ConditionNominal Condition = "Nominal"

	// ConditionElevated permits a derated boot.
	ConditionElevated Condition = "Elevated"

	// ConditionCritical aborts the attempt unconditionally.
	ConditionCritical Condition = "Critical"
)

// String returns the string representation of the Condition.
func (c Condition) String() string {
	if c == ConditionUnknown {
		return "Unknown"
	}
	return string(c)
}

// Conditions is the list of all defined thermal conditions.
var Conditions = []Condition{
	ConditionNominal,
	ConditionElevated,
	ConditionCritical,
}

// ParseCondition parses a string into a Condition.
// Returns the Condition and true if parsing succeeds.
func ParseCondition(s string) (Condition, bool) {
	for _, c := range Conditions {
		if string(c) == s {
			return c, true
		}
	}
	return ConditionUnknown, false
}

// Classify maps a temperature reading to a condition using the profile's
// thresholds. Classification uses the hotter of the two probes.
//
// Band rules:
//   - temp <= NormalMaxC: Nominal
//   - NormalMaxC < temp <= ElevatedMaxC: Elevated
//   - temp >= CriticalMinC, or at/above the absolute ceiling: Critical,
//     regardless of profile
//
// Hysteresis: when prev is Critical, the condition only downgrades once the
// temperature drops below ElevatedMaxC - HysteresisMarginC. This keeps a
// reading bouncing across the critical boundary from flapping the
// classification. On the first reading of an attempt prev is
// ConditionUnknown and no hysteresis applies.
//
// Classify is pure: identical inputs always produce identical conditions.
func Classify(reading sensor.TempReading, p profile.Profile, prev Condition) Condition {
	temp := reading.Clamp().Hottest()

	// The absolute ceiling applies before any profile threshold.
	if temp >= profile.CriticalCeilingC || temp >= p.CriticalMinC {
		return ConditionCritical
	}

	if prev == ConditionCritical && temp >= p.ElevatedMaxC-p.HysteresisMarginC {
		return ConditionCritical
	}

	if temp <= p.NormalMaxC {
		return ConditionNominal
	}
	if temp <= p.ElevatedMaxC {
		return ConditionElevated
	}

	// Between ElevatedMaxC and CriticalMinC. Only reachable when a profile
	// leaves a gap between the two thresholds; treat it as critical since
	// it is past the derated band.
	return ConditionCritical
}

// ClassifyUnreadable returns the condition for a failed temperature read.
// An unreadable sensor during the thermal check is never assumed nominal.
func ClassifyUnreadable() Condition {
	slog.Warn("temperature unreadable, classifying critical")
	return ConditionCritical
}
