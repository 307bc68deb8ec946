package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one App.
type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	meaningLookups   *prometheus.CounterVec
}

// NewMetrics creates collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailyword_upstream_requests_total",
				Help: "Total number of upstream requests by service (puzzle, translate or dictionary source)",
			},
			[]string{"service", "result"},
		),
		meaningLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailyword_meaning_lookups_total",
				Help: "Total number of meaning lookups by winning source",
			},
			[]string{"source"},
		),
	}
}

// ObserveUpstream counts one upstream call with result "ok" or "error".
func (m *Metrics) ObserveUpstream(service string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.upstreamRequests.WithLabelValues(service, result).Inc()
}

// ObserveMeaning counts one resolved meaning lookup.
func (m *Metrics) ObserveMeaning(source string) {
	m.meaningLookups.WithLabelValues(source).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
