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

	"github.com/industrial-edge/bootguard/pkg/defaults"
	"github.com/industrial-edge/bootguard/pkg/power"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
	"github.com/industrial-edge/bootguard/pkg/thermal"
)

// Sequencer drives one boot attempt through the state machine
//
//	PowerCheck -> ThermalCheck -> HardwareInit -> Complete
//
// with Aborted as the terminal state for any gating failure. The sequencer
// holds no state across attempts; everything attempt-scoped lives on the
// Attempt record.
type Sequencer struct {
	// Gateway supplies sensor readings. Required.
	Gateway sensor.Gateway

	// Monitor classifies power readings. If nil, the default 12V monitor
	// is used.
	Monitor *power.Monitor

	// Initializer supplies hardware init sub-steps. If nil, the default
	// initializer is used.
	Initializer Initializer

	// InitStepTimeout bounds each init sub-step. Zero means the default.
	InitStepTimeout time.Duration
}

// Option is a functional option for configuring the Sequencer.
type Option func(*Sequencer)

// WithMonitor sets the power monitor.
func WithMonitor(m *power.Monitor) Option {
	return func(s *Sequencer) {
		s.Monitor = m
	}
}

// WithInitializer sets the hardware initializer.
func WithInitializer(i Initializer) Option {
	return func(s *Sequencer) {
		s.Initializer = i
	}
}

// WithInitStepTimeout sets the per-sub-step timeout.
func WithInitStepTimeout(d time.Duration) Option {
	return func(s *Sequencer) {
		s.InitStepTimeout = d
	}
}

// NewSequencer creates a Sequencer reading from the given gateway.
func NewSequencer(gw sensor.Gateway, opts ...Option) *Sequencer {
	s := &Sequencer{
		Gateway:         gw,
		Monitor:         power.NewMonitor(),
		Initializer:     &DefaultInitializer{},
		InitStepTimeout: defaults.InitStepTimeout,
	}

	// Apply options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes one boot attempt with the given session-scoped number and
// resolved profile, and returns the terminal attempt record. Run never
// returns an error: every input maps to a definite terminal outcome, and
// the outcome plus trace carry the failure detail.
func (s *Sequencer) Run(ctx context.Context, number int, prof profile.Profile) *Attempt {
	attempt := NewAttempt(number, prof)

	slog.Info("boot attempt started",
		"attempt", attempt.Number,
		"attemptID", attempt.ID,
		"profile", prof.ID,
	)

	start := time.Now()
	defer func() {
		attemptDuration.Observe(time.Since(start).Seconds())
		attemptTotal.WithLabelValues(attempt.Outcome.String()).Inc()
	}()

	// Both gating reads share one snapshot deadline so a stuck probe
	// cannot stall the attempt past the sampling window.
	snapCtx, cancelSnap := context.WithTimeout(ctx, defaults.SnapshotTimeout)
	defer cancelSnap()

	state := StatePowerCheck
	for !state.Terminal() {
		entered := time.Now()
		var next State

		switch state {
		case StatePowerCheck:
			next = s.runPowerCheck(snapCtx, attempt, entered)
		case StateThermalCheck:
			next = s.runThermalCheck(snapCtx, attempt, entered)
		case StateHardwareInit:
			next = s.runHardwareInit(ctx, attempt, entered)
		default:
			// Unreachable: the loop only enters non-terminal states.
			next = StateAborted
		}

		stateDuration.WithLabelValues(state.String()).Observe(time.Since(entered).Seconds())
		slog.Info("boot state transition",
			"attempt", attempt.Number,
			"from", state.String(),
			"to", next.String(),
		)
		state = next
	}

	if state == StateComplete {
		outcome := OutcomeSuccess
		if attempt.Derated {
			outcome = OutcomeSuccessDerated
			deratedBootTotal.Inc()
		}
		attempt.finish(outcome)
	}

	slog.Info("boot attempt finished",
		"attempt", attempt.Number,
		"outcome", attempt.Outcome.String(),
		"derated", attempt.Derated,
		"duration", attempt.Duration().String(),
	)
	return attempt
}

// runPowerCheck samples the rail and gates on its stability. Power runs
// before any thermal read: the rail must be trustworthy before any other
// reading is trusted.
func (s *Sequencer) runPowerCheck(ctx context.Context, attempt *Attempt, entered time.Time) State {
	readCtx, cancel := context.WithTimeout(ctx, defaults.SensorReadTimeout)
	reading, err := s.Gateway.ReadPower(readCtx)
	cancel()
	if err != nil {
		slog.Warn("power read failed",
			"attempt", attempt.Number,
			"error", err,
		)
	}
	attempt.Measurement.Power = reading
	attempt.Measurement.CapturedAt = time.Now().UTC()

	cond := s.Monitor.Check(reading, err)
	attempt.PowerCondition = cond

	switch cond {
	case power.ConditionUnstable:
		attempt.record(StatePowerCheck, StateAborted, "power "+cond.String(), entered)
		attempt.finish(OutcomeAbortedPower)
		return StateAborted
	case power.ConditionDegraded:
		attempt.Derated = true
	}

	attempt.record(StatePowerCheck, StateThermalCheck, "power "+cond.String(), entered)
	return StateThermalCheck
}

// runThermalCheck samples both temperature probes and gates on the
// classification. Critical never proceeds, whatever the profile or derated
// flag says.
func (s *Sequencer) runThermalCheck(ctx context.Context, attempt *Attempt, entered time.Time) State {
	readCtx, cancel := context.WithTimeout(ctx, defaults.SensorReadTimeout)
	reading, err := s.Gateway.ReadTemperature(readCtx)
	cancel()

	var cond thermal.Condition
	if err != nil {
		slog.Warn("temperature read failed",
			"attempt", attempt.Number,
			"error", err,
		)
		cond = thermal.ClassifyUnreadable()
	} else {
		attempt.Measurement.Temp = reading
		cond = thermal.Classify(reading, attempt.Profile, thermal.ConditionUnknown)
	}
	attempt.ThermalCondition = cond

	slog.Info("thermal classification",
		"attempt", attempt.Number,
		"cpuTempC", reading.CPUTempC,
		"boardTempC", reading.BoardTempC,
		"profile", attempt.Profile.ID,
		"condition", cond.String(),
	)

	switch cond {
	case thermal.ConditionCritical:
		attempt.record(StateThermalCheck, StateAborted, "thermal "+cond.String(), entered)
		attempt.finish(OutcomeAbortedThermal)
		return StateAborted
	case thermal.ConditionElevated:
		attempt.Derated = true
	}

	attempt.record(StateThermalCheck, StateHardwareInit, "thermal "+cond.String(), entered)
	return StateHardwareInit
}

// runHardwareInit executes the init sub-steps in fixed order. The derated
// flag skips non-essential steps but never touches the gating already done.
func (s *Sequencer) runHardwareInit(ctx context.Context, attempt *Attempt, entered time.Time) State {
	for _, step := range s.Initializer.Steps() {
		if attempt.Derated && !step.Essential {
			slog.Info("skipping non-essential init sub-step",
				"attempt", attempt.Number,
				"step", step.Name,
			)
			attempt.record(StateHardwareInit, StateHardwareInit, "skipped "+step.Name, entered)
			continue
		}

		stepStart := time.Now()
		stepCtx, cancel := context.WithTimeout(ctx, s.InitStepTimeout)
		err := step.Run(stepCtx, attempt.Derated)
		cancel()
		initStepDuration.WithLabelValues(step.Name).Observe(time.Since(stepStart).Seconds())

		if err != nil {
			slog.Error("hardware init sub-step failed",
				"attempt", attempt.Number,
				"step", step.Name,
				"error", err,
			)
			attempt.record(StateHardwareInit, StateAborted, "failed "+step.Name, entered)
			attempt.finish(OutcomeAbortedHardwareInit)
			return StateAborted
		}
		attempt.record(StateHardwareInit, StateHardwareInit, "completed "+step.Name, entered)
	}

	attempt.record(StateHardwareInit, StateComplete, "", entered)
	return StateComplete
}
