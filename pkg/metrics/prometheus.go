package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the application's Prometheus metrics on a private registry.
type Collector struct {
	registry           *prometheus.Registry
	transfersProcessed prometheus.Counter
	transfersFailed    prometheus.Counter
	transferDuration   prometheus.Histogram
	operations         *prometheus.CounterVec
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		transfersProcessed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "transfers_processed_total",
			Help: "Total number of settled transfers",
		}),
		transfersFailed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "transfers_failed_total",
			Help: "Total number of rejected or failed transfers",
		}),
		transferDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "transfer_duration_seconds",
			Help:    "Time taken to settle a transfer",
			Buckets: prometheus.DefBuckets,
		}),
		operations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of balance-affecting operations by entry kind",
		}, []string{"kind"}),
	}
}

// RecordTransfer records the outcome and duration of a transfer attempt.
func (c *Collector) RecordTransfer(duration time.Duration, success bool) {
	if c == nil {
		return
	}
	if success {
		c.transfersProcessed.Inc()
	} else {
		c.transfersFailed.Inc()
	}
	c.transferDuration.Observe(duration.Seconds())
}

// RecordOperation counts one balance-affecting operation of the given entry kind.
func (c *Collector) RecordOperation(kind string) {
	if c == nil {
		return
	}
	c.operations.WithLabelValues(kind).Inc()
}

// Handler returns the HTTP handler serving the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
