package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HitsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gacollect_hits_built_total",
		Help: "Total number of hits whose parameter set was built, labelled by hit type.",
	}, []string{"hit_type"})

	HitsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gacollect_hits_rejected_total",
		Help: "Total number of hits rejected by validation before building, labelled by hit type.",
	}, []string{"hit_type"})

	HitsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gacollect_hits_sent_total",
		Help: "Total number of hits delivered to the collection endpoint, labelled by HTTP method.",
	}, []string{"method"})

	HitsSimulated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gacollect_hits_simulated_total",
		Help: "Total number of hits built but not sent because no endpoint is configured.",
	}, []string{"hit_type"})

	TransportErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gacollect_transport_errors_total",
		Help: "Total number of hits that failed in the HTTP client.",
	})

	SendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gacollect_send_duration_ms",
		Help:    "Collection endpoint round trip latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	HitsByDevice = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gacollect_relay_hits_by_device_total",
		Help: "Hits received by the relay, labelled by the visitor's device class.",
	}, []string{"device"})
)
