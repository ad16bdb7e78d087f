package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
)

// population outcomes
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeSkipped = "skipped"
)

// Metrics holds discovery counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	feedRequests   prometheus.Counter
	sharedRequests prometheus.Counter
	gateDenials    prometheus.Counter
	populations    *prometheus.CounterVec
	feedItems      prometheus.Histogram
}

// NewMetrics creates discovery metrics and registers them with reg, if not nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		feedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "luvbee",
			Name:      "feed_requests_total",
			Help:      "Total number of feed requests.",
		}),
		sharedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "luvbee",
			Name:      "feed_shared_requests_total",
			Help:      "Feed requests whose computation was shared with concurrent callers.",
		}),
		gateDenials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "luvbee",
			Name:      "populate_cooldown_denials_total",
			Help:      "Sparse feeds not populated because of the cooldown.",
		}),
		populations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luvbee",
			Name:      "populate_runs_total",
			Help:      "Population runs by source and outcome.",
		}, []string{"source", "outcome"}),
		feedItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "luvbee",
			Name:      "feed_items",
			Help:      "Number of items returned per feed computation.",
			Buckets:   []float64{0, 1, 5, 10, 20, 50},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.feedRequests, m.sharedRequests, m.gateDenials, m.populations, m.feedItems)
	}
	return m
}

func (m *Metrics) feedRequest(shared bool) {
	if m == nil {
		return
	}
	m.feedRequests.Inc()
	if shared {
		m.sharedRequests.Inc()
	}
}

func (m *Metrics) gateDenied() {
	if m == nil {
		return
	}
	m.gateDenials.Inc()
}

func (m *Metrics) populated(source, outcome string) {
	if m == nil {
		return
	}
	m.populations.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) feedSize(n int) {
	if m == nil {
		return
	}
	m.feedItems.Observe(float64(n))
}
