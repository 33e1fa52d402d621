// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// IncrementAccessDecision counts guard decisions, tags carry "check" and "outcome".
	IncrementAccessDecision(map[string]string) error
}
