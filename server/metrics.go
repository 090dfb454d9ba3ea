// SPDX-License-Identifier: MIT

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lvroute"

// Route request outcomes, the values of the "result" label.
const (
	resultFound      = "found"
	resultNoRoute    = "no_route"
	resultBadRequest = "bad_request"
	resultNotFound   = "not_found"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	explored prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "route_requests_total",
				Help:      "Route requests by result",
			},
			[]string{"result"},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "route_duration_seconds",
				Help:      "Time spent in the route search",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
		),
		explored: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "route_explored_nodes",
				Help:      "Nodes expanded per route search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
}
