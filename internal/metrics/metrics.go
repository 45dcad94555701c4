package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fesipop_http_requests_total",
		Help: "HTTP requests served, by route pattern and status code.",
	}, []string{"route", "status"})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fesipop_http_request_duration_seconds",
		Help:    "Time from request receipt to response completion.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fesipop_logins_total",
		Help: "Login attempts, by outcome (success, failure).",
	}, []string{"outcome"})

	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fesipop_event_searches_total",
		Help: "Event search queries executed.",
	})
)
