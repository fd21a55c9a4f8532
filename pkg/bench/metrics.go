// Package bench implements the benchmarking/simulation harness named as
// an external collaborator in spec.md §1: a workload runner that drives
// a dictionary.Dictionary and reports latency, rebuild frequency, and
// tree-shape diagnostics, plus a named-tree registry shared by the HTTP
// API and the interactive shell.
package bench

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus instrumentation for both the benchmarking
// harness and the HTTP control surface, grounded on the teacher's
// pkg/api/metrics.go wiring pattern (promauto-registered vecs/gauges)
// renamed to the JumpTree domain.
type Metrics struct {
	opsTotal        *prometheus.CounterVec
	opDuration      *prometheus.HistogramVec
	rebuildsTotal   *prometheus.CounterVec
	treeHeight      *prometheus.GaugeVec
	treeSize        *prometheus.GaugeVec
	treeAvgNodeSize *prometheus.GaugeVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers every metric this package exposes.
func NewMetrics() *Metrics {
	return &Metrics{
		opsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumptree_operations_total",
				Help: "Total number of dictionary operations performed.",
			},
			[]string{"tree", "operation", "status"},
		),
		opDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jumptree_operation_duration_seconds",
				Help:    "Dictionary operation duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tree", "operation"},
		),
		rebuildsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumptree_rebuilds_total",
				Help: "Total number of height-triggered rebuilds.",
			},
			[]string{"tree"},
		),
		treeHeight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jumptree_height",
				Help: "Current tree height.",
			},
			[]string{"tree"},
		),
		treeSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jumptree_items_total",
				Help: "Current number of stored items.",
			},
			[]string{"tree"},
		),
		treeAvgNodeSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jumptree_average_node_size",
				Help: "Mean occupancy across all nodes.",
			},
			[]string{"tree"},
		),
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumptree_http_requests_total",
				Help: "Total number of HTTP requests served.",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jumptree_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// RecordOp records a single dictionary operation's outcome and latency.
func (m *Metrics) RecordOp(tree, operation string, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.opsTotal.WithLabelValues(tree, operation, status).Inc()
	m.opDuration.WithLabelValues(tree, operation).Observe(duration.Seconds())
}

// RecordRebuild increments the rebuild counter for a named tree.
func (m *Metrics) RecordRebuild(tree string) {
	m.rebuildsTotal.WithLabelValues(tree).Inc()
}

// UpdateTreeStats refreshes the height/size/average-node-size gauges for
// a named tree. The harness calls it once at the end of each Run; the
// HTTP handlers call it after each mutation.
func (m *Metrics) UpdateTreeStats(tree string, height, size int, avgNodeSize float64) {
	m.treeHeight.WithLabelValues(tree).Set(float64(height))
	m.treeSize.WithLabelValues(tree).Set(float64(size))
	m.treeAvgNodeSize.WithLabelValues(tree).Set(avgNodeSize)
}

// RecordHTTPRequest records an HTTP request's outcome and latency.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// InstrumentHandler wraps handler with request-count and latency
// instrumentation, mirroring the teacher's InstrumentHandler.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
// written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
