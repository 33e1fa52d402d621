// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	accessDecisions        *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not found")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not found")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncrementAccessDecision(tags map[string]string) error {
	if m.accessDecisions == nil {
		return fmt.Errorf("metric not found")
	}

	m.accessDecisions.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "method", "status"},
	)

	m.responseTime = register(m.responseTime, m.logger)
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.dependencyAvailability = register(m.dependencyAvailability, m.logger)
}

func (m *Monitor) registerCounters() {
	m.accessDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "access_decisions_total",
			Help:        "Tenant access guard decisions by check and outcome",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"check", "outcome"},
	)

	m.accessDecisions = register(m.accessDecisions, m.logger)
}

// register returns the collector already on the default registry when there is one.
func register[T prometheus.Collector](c T, logger logging.LoggerInterface) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	logger.Errorf("failed to register metric: %v", err)
	return c
}

// NewMonitor registers the service metrics on the default prometheus registry.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
