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

package session

import (
	"time"

	"github.com/industrial-edge/bootguard/pkg/boot"
	"github.com/industrial-edge/bootguard/pkg/profile"
)

// Report is the durable record of one boot session: every attempt taken,
// in order, and the terminal outcome of the last one.
type Report struct {
	// SessionID uniquely identifies the session.
	SessionID string `json:"sessionId" yaml:"sessionId"`

	// Capability is the hardware capability descriptor the session
	// resolved profiles from.
	Capability profile.Capability `json:"capability" yaml:"capability"`

	// MaxAttempts is the attempt bound the session ran under.
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// Attempts holds every boot attempt the session made, in order.
	Attempts []*boot.Attempt `json:"attempts" yaml:"attempts"`

	// Outcome is the outcome of the final attempt, reported unchanged.
	Outcome boot.Outcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`

	// StartedAt and FinishedAt bound the session.
	StartedAt  time.Time `json:"startedAt" yaml:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitempty" yaml:"finishedAt,omitempty"`
}

func (r *Report) finish() {
	r.FinishedAt = time.Now().UTC()
}

// Succeeded reports whether the session ended in a completed boot.
func (r *Report) Succeeded() bool {
	return r.Outcome.Success()
}

// Duration returns the total session duration, or zero if not finished.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// LastAttempt returns the final attempt, or nil when no attempt ran.
func (r *Report) LastAttempt() *boot.Attempt {
	if len(r.Attempts) == 0 {
		return nil
	}
	return r.Attempts[len(r.Attempts)-1]
}
