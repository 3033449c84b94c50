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

package profile

import (
	"github.com/industrial-edge/bootguard/pkg/errors"
)

// CriticalCeilingC is the absolute temperature ceiling in degrees Celsius.
// No profile may set its critical threshold above this value, whatever the
// configuration says. This bound is deliberately not tunable.
const CriticalCeilingC = 140

// Well-known profile IDs.
const (
	// IDStandard is the conservative profile for climate-controlled sites
	// and any board without enhanced power delivery.
	IDStandard = "standard"

	// IDEnhanced is the profile for mainboard v2.1+ with enhanced power
	// delivery, widening the elevated band for high-ambient factory sites.
	IDEnhanced = "enhanced"
)

// Profile is an immutable set of temperature thresholds for one
// hardware/power-delivery class. All values are degrees Celsius.
type Profile struct {
	ID string `json:"id" yaml:"id"`

	// NormalMaxC is the top of the nominal band.
	NormalMaxC int `json:"normalMaxC" yaml:"normalMaxC"`

	// ElevatedMaxC is the top of the elevated (derated) band. Equal to
	// NormalMaxC on profiles without an elevated band.
	ElevatedMaxC int `json:"elevatedMaxC" yaml:"elevatedMaxC"`

	// CriticalMinC is the temperature at which classification is critical
	// unconditionally.
	CriticalMinC int `json:"criticalMinC" yaml:"criticalMinC"`

	// HysteresisMarginC is the temperature gap required before a condition
	// downgrades from critical, preventing oscillation near the boundary.
	HysteresisMarginC int `json:"hysteresisMarginC" yaml:"hysteresisMarginC"`
}

// HasElevatedBand reports whether the profile has a non-collapsed elevated band.
func (p Profile) HasElevatedBand() bool {
	return p.ElevatedMaxC > p.NormalMaxC
}

// Validate checks the profile threshold invariant:
//
//	NormalMaxC <= ElevatedMaxC <= CriticalMinC <= CriticalCeilingC
//
// and a non-negative hysteresis margin. A violation is a configuration
// error surfaced at load time, never a runtime condition.
func (p Profile) Validate() error {
	if p.ID == "" {
		return errors.New(errors.ErrCodeConfiguration, "profile id must not be empty")
	}
	if p.NormalMaxC > p.ElevatedMaxC {
		return errors.NewWithContext(errors.ErrCodeConfiguration,
			"profile normal threshold exceeds elevated threshold",
			map[string]any{"profile": p.ID, "normalMaxC": p.NormalMaxC, "elevatedMaxC": p.ElevatedMaxC})
	}
	if p.ElevatedMaxC > p.CriticalMinC {
		return errors.NewWithContext(errors.ErrCodeConfiguration,
			"profile elevated threshold exceeds critical threshold",
			map[string]any{"profile": p.ID, "elevatedMaxC": p.ElevatedMaxC, "criticalMinC": p.CriticalMinC})
	}
	if p.CriticalMinC > CriticalCeilingC {
		return errors.NewWithContext(errors.ErrCodeConfiguration,
			"profile critical threshold exceeds the absolute safety ceiling",
			map[string]any{"profile": p.ID, "criticalMinC": p.CriticalMinC, "ceilingC": CriticalCeilingC})
	}
	if p.HysteresisMarginC < 0 {
		return errors.NewWithContext(errors.ErrCodeConfiguration,
			"profile hysteresis margin must not be negative",
			map[string]any{"profile": p.ID, "hysteresisMarginC": p.HysteresisMarginC})
	}
	return nil
}

// Standard returns the built-in conservative profile. The elevated band is
// collapsed, so anything past 85°C is one degree away from critical: the
// behavior of the legacy firmware, kept as the safe default.
func Standard() Profile {
	return Profile{
		ID:                IDStandard,
		NormalMaxC:        85,
		ElevatedMaxC:      85,
		CriticalMinC:      86,
		HysteresisMarginC: 0,
	}
}

// Enhanced returns the built-in profile for boards with enhanced power
// delivery. The elevated band reaches 120°C with derated operation; the
// critical threshold sits at the absolute ceiling.
func Enhanced() Profile {
	return Profile{
		ID:                IDEnhanced,
		NormalMaxC:        85,
		ElevatedMaxC:      120,
		CriticalMinC:      CriticalCeilingC,
		HysteresisMarginC: 5,
	}
}
