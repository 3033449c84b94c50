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
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/industrial-edge/bootguard/pkg/errors"
)

// Table is an immutable set of profiles keyed by ID. The zero value is
// valid and resolves everything through the built-in profiles.
type Table struct {
	profiles map[string]Profile
}

// DefaultTable returns a table holding the built-in standard and enhanced
// profiles.
func DefaultTable() Table {
	t, err := NewTable(Standard(), Enhanced())
	if err != nil {
		// Built-ins violating their own invariant is a programming error.
		panic(err)
	}
	return t
}

// NewTable builds a table from the given profiles, validating each one.
func NewTable(profiles ...Profile) (Table, error) {
	m := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return Table{}, err
		}
		if _, exists := m[p.ID]; exists {
			return Table{}, errors.NewWithContext(errors.ErrCodeConfiguration,
				"duplicate profile id", map[string]any{"profile": p.ID})
		}
		m[p.ID] = p
	}
	return Table{profiles: m}, nil
}

// Get returns the profile with the given ID.
func (t Table) Get(id string) (Profile, bool) {
	p, ok := t.profiles[id]
	return p, ok
}

// IDs returns the IDs of all profiles in the table.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t.profiles))
	for id := range t.profiles {
		ids = append(ids, id)
	}
	return ids
}

// Profiles returns all profiles in the table.
func (t Table) Profiles() []Profile {
	out := make([]Profile, 0, len(t.profiles))
	for _, p := range t.profiles {
		out = append(out, p)
	}
	return out
}

// tableFile is the YAML document shape for an operator-supplied table.
type tableFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// ReadTable parses a profile table from YAML. Every profile is validated;
// an invariant violation fails the whole load with a CONFIGURATION error.
func ReadTable(r io.Reader) (Table, error) {
	var tf tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeConfiguration,
			"failed to parse profile table", err)
	}
	if len(tf.Profiles) == 0 {
		return Table{}, errors.New(errors.ErrCodeConfiguration,
			"profile table defines no profiles")
	}
	return NewTable(tf.Profiles...)
}

// LoadTable reads a profile table from a YAML file. An empty path returns
// the default table.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.WrapWithContext(errors.ErrCodeConfiguration,
			"failed to open profile table", err, map[string]any{"path": path})
	}
	defer f.Close()
	return ReadTable(f)
}
