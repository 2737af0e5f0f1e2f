package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Request metrics
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec

	// Engine metrics
	engineKeys       prometheus.Gauge
	engineSets       prometheus.Gauge
	engineGets       prometheus.Gauge
	recoveredRecords prometheus.Gauge
	skippedLines     prometheus.Gauge
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_request_errors_total",
				Help: "Total number of HTTP request errors",
			},
			[]string{"method", "path", "status"},
		),

		engineKeys: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "engine_keys_total",
				Help: "Number of keys in the in-memory index",
			},
		),
		engineSets: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "engine_sets_total",
				Help: "Total number of successful SET operations",
			},
		),
		engineGets: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "engine_gets_total",
				Help: "Total number of GET operations",
			},
		),
		recoveredRecords: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "engine_recovered_records_total",
				Help: "Number of log records applied during recovery",
			},
		),
		skippedLines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "engine_skipped_lines_total",
				Help: "Number of malformed log lines skipped during recovery",
			},
		),
	}
}

// Middleware records Prometheus metrics for each request
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		m.requestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)
		m.requestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()

		if rw.statusCode >= 400 {
			m.requestErrors.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		}
	})
}

// UpdateEngineMetrics publishes an engine metrics snapshot
func (m *Metrics) UpdateEngineMetrics(keys int, sets, gets, recovered, skipped int64) {
	m.engineKeys.Set(float64(keys))
	m.engineSets.Set(float64(sets))
	m.engineGets.Set(float64(gets))
	m.recoveredRecords.Set(float64(recovered))
	m.skippedLines.Set(float64(skipped))
}
