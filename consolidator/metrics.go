package consolidator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus instruments.
type Metrics struct {
	DocumentsProcessed prometheus.Counter
	DocumentsFailed    prometheus.Counter
	TriplesStored      prometheus.Counter
	TriplesRejected    prometheus.Counter
	ExtractSeconds     prometheus.Histogram
}

// NewMetrics creates and registers the service metrics. Pass
// prometheus.DefaultRegisterer for normal use or a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DocumentsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semstore",
			Name:      "documents_processed_total",
			Help:      "Documents successfully extracted and stored.",
		}),
		DocumentsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semstore",
			Name:      "documents_failed_total",
			Help:      "Documents that failed extraction or storage.",
		}),
		TriplesStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semstore",
			Name:      "triples_stored_total",
			Help:      "Triples added to the graph.",
		}),
		TriplesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semstore",
			Name:      "triples_rejected_total",
			Help:      "Candidate triples rejected by schema validation.",
		}),
		ExtractSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "semstore",
			Name:      "extract_duration_seconds",
			Help:      "Per-document extraction latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.DocumentsProcessed, m.DocumentsFailed, m.TriplesStored, m.TriplesRejected, m.ExtractSeconds)
	return m
}
