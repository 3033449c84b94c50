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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/industrial-edge/bootguard/pkg/boot"
	"github.com/industrial-edge/bootguard/pkg/session"
)

func newTestServer() *Server {
	return NewServer(NewConfig())
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected healthy, got %s", resp.Status)
	}
}

func TestHandleHealthRejectsPost(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleReadyBeforeAndAfterReport(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	s.handleReady(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before report, got %d", rec.Code)
	}

	s.SetReport(&session.Report{Outcome: boot.OutcomeSuccess})

	rec = httptest.NewRecorder()
	s.handleReady(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after report, got %d", rec.Code)
	}
}

func TestHandleReportUnavailable(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	rec := httptest.NewRecorder()
	s.handleReport(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Retryable {
		t.Error("report-not-ready must be retryable")
	}
	if resp.Code != "SERVICE_UNAVAILABLE" {
		t.Errorf("unexpected code %s", resp.Code)
	}
}

func TestHandleReport(t *testing.T) {
	s := newTestServer()
	s.SetReport(&session.Report{
		SessionID: "s-1",
		Outcome:   boot.OutcomeSuccessDerated,
		Attempts:  []*boot.Attempt{{Number: 1}},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	rec := httptest.NewRecorder()
	s.handleReport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp session.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Outcome != boot.OutcomeSuccessDerated {
		t.Errorf("expected SuccessDerated, got %s", resp.Outcome)
	}
	if len(resp.Attempts) != 1 {
		t.Errorf("expected 1 attempt, got %d", len(resp.Attempts))
	}
}

func TestHandleReportRejectsDelete(t *testing.T) {
	s := newTestServer()
	s.SetReport(&session.Report{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/report", nil)
	rec := httptest.NewRecorder()
	s.handleReport(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
		t.Errorf("expected Allow: GET, got %q", allow)
	}
}

func TestHandleDefault(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handleDefault(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Name   string   `json:"name"`
		Ready  bool     `json:"ready"`
		Routes []string `json:"routes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "bootguardd" {
		t.Errorf("expected bootguardd, got %s", resp.Name)
	}
	if resp.Ready {
		t.Error("expected not ready before report")
	}
	if len(resp.Routes) == 0 {
		t.Error("expected route listing")
	}
}
