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
	"log/slog"

	"github.com/industrial-edge/bootguard/pkg/hwrev"
)

// enhancedMinRevision is the first board revision with the strengthened
// power supply.
var enhancedMinRevision = hwrev.MustParse("2.1")

// Resolver selects the active profile for a boot attempt from the hardware
// capability descriptor. Resolution is pure and total: it has no failure
// path, and anything unrecognized resolves to the standard profile.
type Resolver struct {
	table Table
}

// NewResolver creates a Resolver backed by the given profile table.
// A zero-value table falls back to the built-in profiles.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the profile for the given capability. The enhanced
// profile requires both a v2.1+ board revision and the enhanced power
// delivery flag; everything else gets the standard profile.
func (r *Resolver) Resolve(capability Capability) Profile {
	id := IDStandard
	if capability.EnhancedPowerDelivery && capability.Revision.AtLeast(enhancedMinRevision) {
		id = IDEnhanced
	}

	p, ok := r.table.Get(id)
	if !ok {
		// Table without the resolved entry: fall back to built-ins, and
		// ultimately to standard.
		slog.Warn("profile table missing resolved profile, using built-in",
			"profile", id)
		switch id {
		case IDEnhanced:
			return Enhanced()
		default:
			return Standard()
		}
	}

	slog.Debug("resolved environment profile",
		"profile", p.ID,
		"revision", capability.Revision.String(),
		"enhancedPowerDelivery", capability.EnhancedPowerDelivery,
	)
	return p
}
