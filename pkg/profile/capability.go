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
	"github.com/industrial-edge/bootguard/pkg/hwrev"
)

// epdSuffix is the revision suffix marking enhanced power delivery,
// e.g. "2.1-epd".
const epdSuffix = "epd"

// Capability is the static hardware capability descriptor available before
// the first boot attempt. It identifies the board revision and power-delivery
// class; it is read-only and never derived from live measurements.
type Capability struct {
	// Revision is the mainboard hardware revision.
	Revision hwrev.Revision `json:"revision" yaml:"revision"`

	// EnhancedPowerDelivery reports whether the strengthened power supply
	// is present.
	EnhancedPowerDelivery bool `json:"enhancedPowerDelivery" yaml:"enhancedPowerDelivery"`
}

// ParseCapability parses a descriptor string such as "2.1-epd" or "v2.0".
// An unparseable descriptor yields the zero Capability, which resolves to
// the standard profile; it is never an error.
func ParseCapability(descriptor string) Capability {
	rev, err := hwrev.Parse(descriptor)
	if err != nil {
		return Capability{}
	}
	return Capability{
		Revision:              rev,
		EnhancedPowerDelivery: rev.HasSuffix(epdSuffix),
	}
}
