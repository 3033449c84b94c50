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

// Package hwrev parses and compares mainboard hardware revision identifiers
// such as "2.1" or "v2.1-epd". Revision strings come from the board's
// capability descriptor and drive environment profile resolution.
package hwrev

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for revision parsing failures
var (
	ErrEmptyRevision     = errors.New("revision string is empty")
	ErrTooManyComponents = errors.New("revision has more than 2 components")
	ErrNonNumeric        = errors.New("revision component is not numeric")
	ErrNegativeComponent = errors.New("revision component cannot be negative")
)

// Revision represents a mainboard hardware revision with Major and Minor
// components. Additional build metadata such as "-epd" (enhanced power
// delivery) suffixes is preserved in the Extras field. The Precision field
// indicates how many components were present in the parsed string.
type Revision struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`

	// Precision indicates how many components are significant (1 or 2)
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras stores suffix metadata like "-epd" or "+rework3"
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the string representation of the Revision respecting its
// precision. Extras are not included.
func (r Revision) String() string {
	if r.Precision == 1 {
		return fmt.Sprintf("%d", r.Major)
	}
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Parse parses a revision string into a Revision struct.
// Supported formats: "2", "2.1", "v2.1", "2.1-epd", "2.1+rework3".
// The "v" prefix is optional and stripped if present.
// Suffix metadata after '-' or '+' is preserved in the Extras field.
func Parse(s string) (Revision, error) {
	if s == "" {
		return Revision{}, ErrEmptyRevision
	}

	s = strings.TrimPrefix(s, "v")
	var r Revision

	// Extract extras if they exist (anything after a dash or plus that
	// follows a digit, so "-1" is not misread as a suffix)
	mainPart := s
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 {
			prevCh := s[i-1]
			if prevCh >= '0' && prevCh <= '9' {
				mainPart = s[:i]
				r.Extras = s[i:]
				break
			}
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 2 {
		return Revision{}, ErrTooManyComponents
	}

	for i, part := range parts {
		if part == "" {
			return Revision{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Revision{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Revision{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			r.Major = num
		case 1:
			r.Minor = num
		}
	}

	r.Precision = len(parts)
	return r, nil
}

// MustParse parses a revision string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For descriptor data read
// at runtime, always use Parse and handle errors explicitly.
func MustParse(s string) Revision {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("hwrev.MustParse: %v", err))
	}
	return r
}

// AtLeast returns true if r is equal to or newer than other.
// Comparison is performed up to the precision of r, so Revision{Major:2,
// Precision:1} matches any 2.x board.
func (r Revision) AtLeast(other Revision) bool {
	if r.Major > other.Major {
		return true
	}
	if r.Major < other.Major {
		return false
	}

	// Major only: equal is enough
	if r.Precision == 1 {
		return true
	}

	return r.Minor >= other.Minor
}

// HasSuffix reports whether the revision's extras contain the given marker,
// e.g. HasSuffix("epd") matches "2.1-epd".
func (r Revision) HasSuffix(marker string) bool {
	if r.Extras == "" || marker == "" {
		return false
	}
	trimmed := strings.TrimLeft(r.Extras, "-+")
	for _, part := range strings.Split(trimmed, "-") {
		if strings.EqualFold(part, marker) {
			return true
		}
	}
	return false
}
