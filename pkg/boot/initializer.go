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
	"context"
	"log/slog"
	"time"
)

// Init sub-step names in fixed execution order.
const (
	StepCPU    = "cpu"
	StepMemory = "memory"
	StepIO     = "io"
)

// InitStep is one hardware initialization sub-step. Steps execute in the
// order the Initializer returns them; a failed step aborts the attempt.
type InitStep struct {
	// Name identifies the sub-step in the trace.
	Name string

	// Essential steps run in both full and derated mode. Non-essential
	// steps are skipped when the attempt is derated.
	Essential bool

	// Run performs the sub-step. The derated flag selects the reduced
	// init path (lower clocks, extra monitoring) where the step supports
	// one; it never changes thermal or power gating.
	Run func(ctx context.Context, derated bool) error
}

// Initializer supplies the ordered hardware init sub-steps.
type Initializer interface {
	Steps() []InitStep
}

// DefaultInitializer performs the stock CPU, memory, and I/O bring-up.
// The I/O step is non-essential: a derated boot comes up without optional
// peripherals.
type DefaultInitializer struct {
	// StepDelay, when set, simulates per-step hardware latency. Used by
	// the CLI simulation mode.
	StepDelay time.Duration
}

// Steps returns the stock init sequence.
func (d *DefaultInitializer) Steps() []InitStep {
	return []InitStep{
		{Name: StepCPU, Essential: true, Run: d.step(StepCPU)},
		{Name: StepMemory, Essential: true, Run: d.step(StepMemory)},
		{Name: StepIO, Essential: false, Run: d.step(StepIO)},
	}
}

func (d *DefaultInitializer) step(name string) func(ctx context.Context, derated bool) error {
	return func(ctx context.Context, derated bool) error {
		if d.StepDelay > 0 {
			timer := time.NewTimer(d.StepDelay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		slog.Info("hardware init sub-step complete",
			"step", name,
			"derated", derated,
		)
		return nil
	}
}
