package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PushRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_push_retries_total",
			Help: "Total number of push gateway retry attempts",
		},
		[]string{"service", "method", "reason"},
	)

	PushRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_push_request_duration_seconds",
			Help:    "Duration of push gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "http_code"},
	)
)
