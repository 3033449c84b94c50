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
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/industrial-edge/bootguard/pkg/boot"
	"github.com/industrial-edge/bootguard/pkg/defaults"
	"github.com/industrial-edge/bootguard/pkg/errors"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
)

// Session coordinates boot attempts for one power-on cycle. It owns the
// attempt counter, re-resolves the profile and re-samples the sensors for
// every attempt, and retries only the transient abort classes.
type Session struct {
	id          string
	sequencer   *boot.Sequencer
	resolver    *profile.Resolver
	capability  profile.Capability
	maxAttempts int
	pacing      time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithMaxAttempts bounds the number of boot attempts per session.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithPacingInterval sets the minimum interval between attempt starts.
func WithPacingInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.pacing = d
		}
	}
}

// WithSequencer replaces the sequencer driving each attempt.
func WithSequencer(seq *boot.Sequencer) Option {
	return func(s *Session) {
		s.sequencer = seq
	}
}

// NewSession creates a Session for the given sensor gateway, profile
// resolver, and hardware capability descriptor.
func NewSession(gw sensor.Gateway, resolver *profile.Resolver, capability profile.Capability, opts ...Option) *Session {
	s := &Session{
		id:          uuid.New().String(),
		sequencer:   boot.NewSequencer(gw),
		resolver:    resolver,
		capability:  capability,
		maxAttempts: defaults.RetryMaxAttempts,
		pacing:      defaults.RetryPacingInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run drives the session to a terminal outcome. Each attempt resolves the
// profile and samples the sensors afresh, so a cooling board or a settling
// rail is observed rather than assumed. Only retryable outcomes trigger
// another attempt; the final attempt's outcome is reported unchanged.
//
// Run returns an error only when ctx is canceled between attempts. The
// report is returned in both cases and covers the attempts that completed.
func (s *Session) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		SessionID:   s.id,
		Capability:  s.capability,
		MaxAttempts: s.maxAttempts,
		StartedAt:   time.Now().UTC(),
	}

	slog.Info("boot session starting",
		"session", s.id,
		"maxAttempts", s.maxAttempts,
		"revision", s.capability.Revision.String(),
		"enhancedPowerDelivery", s.capability.EnhancedPowerDelivery,
	)

	limiter := rate.NewLimiter(rate.Every(s.pacing), 1)

	for number := 1; number <= s.maxAttempts; number++ {
		if err := limiter.Wait(ctx); err != nil {
			report.finish()
			sessionCanceledTotal.Inc()
			return report, errors.Wrap(errors.ErrCodeTransient,
				"boot session canceled between attempts", err)
		}

		prof := s.resolver.Resolve(s.capability)
		attemptCtx, cancel := context.WithTimeout(ctx, defaults.AttemptTimeout)
		attempt := s.sequencer.Run(attemptCtx, number, prof)
		cancel()
		report.Attempts = append(report.Attempts, attempt)
		report.Outcome = attempt.Outcome

		if !attempt.Outcome.Retryable() {
			break
		}

		if number < s.maxAttempts {
			slog.Warn("boot attempt failed, retrying",
				"session", s.id,
				"attempt", number,
				"outcome", attempt.Outcome,
				"remaining", s.maxAttempts-number,
			)
			retriesTotal.WithLabelValues(attempt.Outcome.String()).Inc()
		}
	}

	report.finish()

	sessionTotal.WithLabelValues(report.Outcome.String()).Inc()
	sessionAttempts.Observe(float64(len(report.Attempts)))
	sessionDuration.Observe(report.Duration().Seconds())

	slog.Info("boot session finished",
		"session", s.id,
		"outcome", report.Outcome,
		"attempts", len(report.Attempts),
		"duration", report.Duration(),
	)
	return report, nil
}
