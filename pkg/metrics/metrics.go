// Package metrics wires github.com/prometheus/client_golang counters and
// histograms for the query engine, in the shape cmd/engine/main.go expects
// of rest.NewMetrics: build one Metrics against a registry, hand it to a
// middleware, and expose the registry on /metrics via promhttp.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the query engine's Prometheus instruments.
type Metrics struct {
	QueriesTotal   *prometheus.CounterVec
	QueryLatency   *prometheus.HistogramVec
	NodesPopped    *prometheus.HistogramVec
	HTTPInFlight   prometheus.Gauge
	HTTPRequestDur *prometheus.HistogramVec
}

// NewMetrics registers the query engine's instruments against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routing_engine",
			Name:      "queries_total",
			Help:      "Total queries served, by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		QueryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "routing_engine",
			Name:      "query_duration_seconds",
			Help:      "Query latency by algorithm.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
		NodesPopped: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "routing_engine",
			Name:      "query_nodes_popped",
			Help:      "Search-graph vertices popped per query, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 16),
		}, []string{"algorithm"}),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "routing_engine",
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
		HTTPRequestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "routing_engine",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	reg.MustRegister(m.QueriesTotal, m.QueryLatency, m.NodesPopped, m.HTTPInFlight, m.HTTPRequestDur)
	return m
}

// ObserveQuery records one query's outcome, latency, and pop count.
func (m *Metrics) ObserveQuery(algorithm string, reachable bool, elapsed time.Duration, nodesPopped int) {
	outcome := "unreachable"
	if reachable {
		outcome = "reachable"
	}
	m.QueriesTotal.WithLabelValues(algorithm, outcome).Inc()
	m.QueryLatency.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	m.NodesPopped.WithLabelValues(algorithm).Observe(float64(nodesPopped))
}

// HTTPMiddleware times every request and tracks in-flight count, mirroring
// the teacher's rest.PromeHttpMiddleware call site in cmd/engine/main.go.
func (m *Metrics) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.HTTPInFlight.Inc()
		defer m.HTTPInFlight.Dec()

		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		m.HTTPRequestDur.WithLabelValues(r.URL.Path, statusBucket(sw.status)).Observe(time.Since(started).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func statusBucket(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
