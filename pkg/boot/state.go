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

// State is a position in the boot sequence. Every attempt starts at
// StatePowerCheck and ends at StateComplete or StateAborted.
type State string

const (
	StatePowerCheck   State = "PowerCheck"
	StateThermalCheck State = "ThermalCheck"
	StateHardwareInit State = "HardwareInit"
	StateComplete     State = "Complete"
	StateAborted      State = "Aborted"
)

// String returns the string representation of the State.
func (s State) String() string {
	return string(s)
}

// Terminal reports whether the state ends the attempt.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateAborted
}

// States is the list of all boot states in sequence order, terminal states
// last.
var States = []State{
	StatePowerCheck,
	StateThermalCheck,
	StateHardwareInit,
	StateComplete,
	StateAborted,
}

// Outcome is the terminal result of one boot attempt. Exactly one outcome
// is produced per attempt.
type Outcome string

const (
	// OutcomeSuccess is a full boot with no derating.
	OutcomeSuccess Outcome = "Success"

	// OutcomeSuccessDerated is a completed boot with reduced functionality
	// (elevated thermal band or degraded power).
	OutcomeSuccessDerated Outcome = "SuccessDerated"

	// OutcomeAbortedThermal is a thermal safety abort. Never retried
	// automatically: cooling is not instantaneous and a blind retry risks
	// repeated attempts into an unsafe window.
	OutcomeAbortedThermal Outcome = "AbortedThermal"

	// OutcomeAbortedPower is an abort on unstable power. Retryable.
	OutcomeAbortedPower Outcome = "AbortedPower"

	// OutcomeAbortedHardwareInit is an abort on a failed init sub-step.
	// Retryable.
	OutcomeAbortedHardwareInit Outcome = "AbortedHardwareInit"
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	return string(o)
}

// Outcomes is the list of all terminal boot outcomes.
var Outcomes = []Outcome{
	OutcomeSuccess,
	OutcomeSuccessDerated,
	OutcomeAbortedThermal,
	OutcomeAbortedPower,
	OutcomeAbortedHardwareInit,
}

// ParseOutcome parses a string into an Outcome.
// Returns the Outcome and true if parsing succeeds.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range Outcomes {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

// Success reports whether the outcome represents a completed boot.
func (o Outcome) Success() bool {
	return o == OutcomeSuccess || o == OutcomeSuccessDerated
}

// Retryable reports whether the retry coordinator may re-attempt after this
// outcome. Only the transient abort classes are retryable; thermal aborts
// are surfaced immediately as fatal for the cycle.
func (o Outcome) Retryable() bool {
	return o == OutcomeAbortedPower || o == OutcomeAbortedHardwareInit
}
