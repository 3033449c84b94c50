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

package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	sd "github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"

	"github.com/industrial-edge/bootguard/pkg/defaults"
	"github.com/industrial-edge/bootguard/pkg/logging"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/server"
	"github.com/industrial-edge/bootguard/pkg/session"
)

const (
	name           = "bootguardd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Run starts the daemon: it executes the boot session once, publishes the
// report on the diagnostics server, and keeps serving until terminated.
func Run() error {
	logging.SetDefaultStructuredLogger(name, version)

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid daemon configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWithConfig(ctx, cfg)
}

func runWithConfig(ctx context.Context, cfg *Config) error {
	srvCfg := server.NewConfig()
	srvCfg.Version = version

	srv := server.NewServer(srvCfg)

	sess := session.NewSession(cfg.Gateway(), profile.NewResolver(cfg.Table), cfg.Capability,
		session.WithMaxAttempts(cfg.MaxAttempts),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		report, err := sess.Run(gctx)
		if err != nil {
			return err
		}

		srv.SetReport(report)
		notifyReady(report)

		if !report.Succeeded() {
			slog.Error("boot session did not complete",
				"outcome", report.Outcome,
				"attempts", len(report.Attempts),
			)
		}
		return nil
	})

	g.Go(func() error {
		return watchdogLoop(gctx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("daemon error: %w", err)
	}

	slog.Info("daemon stopped gracefully")
	return nil
}

// notifyReady tells the service manager the daemon is up and what the boot
// session concluded. A non-systemd environment is not an error.
func notifyReady(report *session.Report) {
	sent, err := sd.SdNotify(false, sd.SdNotifyReady)
	if err != nil {
		slog.Warn("sd_notify failed", "error", err)
		return
	}
	if !sent {
		return
	}

	status := fmt.Sprintf("STATUS=boot %s after %d attempt(s)",
		report.Outcome, len(report.Attempts))
	if _, err := sd.SdNotify(false, status); err != nil {
		slog.Warn("sd_notify status failed", "error", err)
	}
}

// watchdogLoop services the systemd watchdog at half the configured
// interval, capped at defaults.WatchdogInterval. It returns immediately
// when the watchdog is not enabled.
func watchdogLoop(ctx context.Context) error {
	interval, err := sd.SdWatchdogEnabled(false)
	if err != nil {
		slog.Warn("watchdog detection failed", "error", err)
		return nil
	}
	if interval == 0 {
		return nil
	}

	tick := interval / 2
	if tick > defaults.WatchdogInterval {
		tick = defaults.WatchdogInterval
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	slog.Info("systemd watchdog enabled", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := sd.SdNotify(false, sd.SdNotifyWatchdog); err != nil {
				slog.Warn("watchdog notify failed", "error", err)
			}
		}
	}
}
