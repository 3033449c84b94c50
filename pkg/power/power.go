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

package power

import (
	"log/slog"
	"math"

	"github.com/industrial-edge/bootguard/pkg/sensor"
)

// Condition is the power-rail classification for a boot attempt.
type Condition string

const (
	// ConditionStable permits a full boot.
	ConditionStable Condition = "Stable"

	// ConditionDegraded permits a derated boot (optional peripherals stay
	// off during hardware init).
	ConditionDegraded Condition = "Degraded"

	// ConditionUnstable is fatal for the attempt. Power must be trustworthy
	// before any other reading is trusted.
	ConditionUnstable Condition = "Unstable"
)

// String returns the string representation of the Condition.
func (c Condition) String() string {
	return string(c)
}

// Conditions is the list of all defined power conditions.
var Conditions = []Condition{
	ConditionStable,
	ConditionDegraded,
	ConditionUnstable,
}

// ParseCondition parses a string into a Condition.
// Returns the Condition and true if parsing succeeds.
func ParseCondition(s string) (Condition, bool) {
	for _, c := range Conditions {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Default rail tolerances. The main rail is nominally 12V; within 5%
// deviation the supply is stable, within 10% it is degraded, beyond that
// unstable.
const (
	DefaultNominalVoltage    = 12.0
	DefaultStableDeviation   = 0.05
	DefaultDegradedDeviation = 0.10
	DefaultMaxCurrent        = 30.0
)

// Monitor classifies power-rail measurements. The zero value is not usable;
// construct with NewMonitor.
type Monitor struct {
	// NominalVoltage is the expected rail voltage in volts.
	NominalVoltage float64

	// StableDeviation and DegradedDeviation are fractional deviation bounds
	// from the nominal voltage.
	StableDeviation   float64
	DegradedDeviation float64

	// MaxCurrent is the rail current in amps above which the supply is
	// considered degraded (overdraw) even at good voltage.
	MaxCurrent float64
}

// NewMonitor creates a Monitor with the default 12V rail tolerances.
func NewMonitor() *Monitor {
	return &Monitor{
		NominalVoltage:    DefaultNominalVoltage,
		StableDeviation:   DefaultStableDeviation,
		DegradedDeviation: DefaultDegradedDeviation,
		MaxCurrent:        DefaultMaxCurrent,
	}
}

// Check maps a rail measurement to a condition. A read error maps to
// Unstable: an unreadable rail is never trusted. Check is pure and total.
func (m *Monitor) Check(reading sensor.PowerReading, readErr error) Condition {
	if readErr != nil {
		slog.Warn("power rail unreadable, classifying unstable", "error", readErr)
		return ConditionUnstable
	}

	r := reading.Clamp()
	deviation := math.Abs(r.RailVoltage-m.NominalVoltage) / m.NominalVoltage

	switch {
	case deviation > m.DegradedDeviation:
		return ConditionUnstable
	case deviation > m.StableDeviation:
		return ConditionDegraded
	case r.RailCurrent > m.MaxCurrent:
		return ConditionDegraded
	default:
		return ConditionStable
	}
}
