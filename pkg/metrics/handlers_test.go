// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring/prometheus"
)

func TestMetricsEndpoint(t *testing.T) {
	logger := logging.NewNoopLogger()

	monitor := prometheus.NewMonitor("metrics-test", logger)
	_ = monitor.IncrementAccessDecision(map[string]string{"check": "tenant", "outcome": "deny"})

	mux := chi.NewMux()
	NewAPI(logger).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "access_decisions_total") {
		t.Errorf("expected access decision counter in the exposition")
	}
}
