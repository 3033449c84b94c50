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
	"time"

	"github.com/google/uuid"

	"github.com/industrial-edge/bootguard/pkg/power"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
	"github.com/industrial-edge/bootguard/pkg/thermal"
)

// Transition is one step-trace entry: a state the attempt passed through
// and what was observed there.
type Transition struct {
	// State is the state this entry records.
	State State `json:"state" yaml:"state"`

	// Next is the state transitioned to, or empty when State is terminal.
	Next State `json:"next,omitempty" yaml:"next,omitempty"`

	// Detail carries the observation driving the transition: a condition
	// class, an init sub-step name, or an abort reason.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// At is when the transition was taken.
	At time.Time `json:"at" yaml:"at"`

	// Duration is how long the attempt spent in State.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Attempt is the record of one boot attempt from power check to terminal
// outcome. It is created at the start of a sequence invocation, owned
// exclusively by it, and handed to the caller read-only once the sequence
// terminates.
type Attempt struct {
	// ID uniquely identifies the attempt across the session trace.
	ID string `json:"id" yaml:"id"`

	// Number is the 1-based attempt counter within the boot session.
	Number int `json:"number" yaml:"number"`

	// Profile is the environment profile resolved for this attempt.
	Profile profile.Profile `json:"profile" yaml:"profile"`

	// Measurement is the sensor snapshot captured during the attempt.
	Measurement sensor.Measurement `json:"measurement" yaml:"measurement"`

	// PowerCondition and ThermalCondition are the classifications observed.
	PowerCondition   power.Condition   `json:"powerCondition,omitempty" yaml:"powerCondition,omitempty"`
	ThermalCondition thermal.Condition `json:"thermalCondition,omitempty" yaml:"thermalCondition,omitempty"`

	// Derated reports whether the attempt ran (or would have run) the
	// reduced init path.
	Derated bool `json:"derated" yaml:"derated"`

	// Trace is the ordered list of state transitions taken.
	Trace []Transition `json:"trace" yaml:"trace"`

	// Outcome is the terminal result. Empty until the attempt terminates.
	Outcome Outcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`

	// StartedAt and FinishedAt bound the attempt.
	StartedAt  time.Time `json:"startedAt" yaml:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitempty" yaml:"finishedAt,omitempty"`
}

// NewAttempt creates an attempt record with the given session-scoped number
// and resolved profile.
func NewAttempt(number int, p profile.Profile) *Attempt {
	return &Attempt{
		ID:        uuid.New().String(),
		Number:    number,
		Profile:   p,
		StartedAt: time.Now().UTC(),
	}
}

// record appends a transition to the trace.
func (a *Attempt) record(state, next State, detail string, entered time.Time) {
	now := time.Now().UTC()
	a.Trace = append(a.Trace, Transition{
		State:    state,
		Next:     next,
		Detail:   detail,
		At:       now,
		Duration: now.Sub(entered),
	})
}

// finish marks the attempt terminal with the given outcome.
func (a *Attempt) finish(outcome Outcome) {
	a.Outcome = outcome
	a.FinishedAt = time.Now().UTC()
}

// Duration returns the total attempt duration, or zero if not finished.
func (a *Attempt) Duration() time.Duration {
	if a.FinishedAt.IsZero() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}

// VisitedState reports whether the attempt's trace passed through the given
// state.
func (a *Attempt) VisitedState(s State) bool {
	for _, tr := range a.Trace {
		if tr.State == s || tr.Next == s {
			return true
		}
	}
	return false
}
