// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/community-service/internal/logging"
)

func TestMonitor_IncrementAccessDecision(t *testing.T) {
	m := NewMonitor("community-service-test", logging.NewNoopLogger())
	// a second monitor must share the registered collectors
	other := NewMonitor("community-service-test", logging.NewNoopLogger())

	tags := map[string]string{"check": "login", "outcome": "forbidden"}
	if err := m.IncrementAccessDecision(tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := other.IncrementAccessDecision(tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.accessDecisions.With(tags)); got != 2 {
		t.Errorf("expected 2 decisions, got %v", got)
	}
}

func TestMonitor_SetDependencyAvailability(t *testing.T) {
	m := NewMonitor("community-service-test", logging.NewNoopLogger())

	tags := map[string]string{"component": "database"}
	if err := m.SetDependencyAvailability(tags, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.dependencyAvailability.With(tags)); got != 1 {
		t.Errorf("expected availability 1, got %v", got)
	}
}
