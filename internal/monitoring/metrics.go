// Package monitoring exposes Prometheus metrics and Sentry error reporting.
package monitoring

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	DatabaseQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_database_queries_total",
			Help: "Total database statements by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call twice.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal, RequestDuration, DatabaseQueries)
	})
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveQuery counts one store statement
func ObserveQuery(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	DatabaseQueries.WithLabelValues(operation, outcome).Inc()
}
