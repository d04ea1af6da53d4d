package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PushProduceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_produce_failures_total",
			Help: "Failed push event publications",
		},
		[]string{"topic"},
	)

	PushProduceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "push_produce_duration_seconds",
			Help:    "Duration of push event publications",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"topic", "outcome"},
	)
)
