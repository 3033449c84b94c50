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

package server

import (
	"net/http"

	"github.com/industrial-edge/bootguard/pkg/errors"
	"github.com/industrial-edge/bootguard/pkg/serializer"
	"github.com/industrial-edge/bootguard/pkg/session"
)

// handleReport handles GET /v1/report. Until the boot session finishes the
// endpoint answers 503 with a retryable error body.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	if report == nil {
		WriteError(w, r, http.StatusServiceUnavailable, string(errors.ErrCodeUnavailable),
			"Boot report not yet available", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}

// SetReport publishes the finished boot session report and flips the
// readiness probe.
func (s *Server) SetReport(report *session.Report) {
	s.mu.Lock()
	s.report = report
	s.ready = report != nil
	s.mu.Unlock()
}
