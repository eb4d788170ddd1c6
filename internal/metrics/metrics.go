package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Conversion metrics
	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tick_conversions_total",
		Help: "Total tick conversions served, by operation",
	}, []string{"operation"})

	conversionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tick_conversion_errors_total",
		Help: "Total rejected conversions, by operation and reason",
	}, []string{"operation", "reason"})

	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tick_http_requests_total",
		Help: "Total HTTP requests, by method, route and status",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tick_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
	}, []string{"method", "route"})

	httpRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tick_http_rate_limited_total",
		Help: "Total HTTP requests rejected by the rate limiter",
	})

	// Marker store metrics
	markerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tick_marker_operations_total",
		Help: "Total marker store operations, by backend, operation and result",
	}, []string{"backend", "operation", "result"})

	markerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tick_marker_operation_duration_seconds",
		Help:    "Marker store operation latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 10, 7), // 10µs to 10s
	}, []string{"backend", "operation"})

	// Health metrics
	healthStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tick_health_status",
		Help: "Last health check result per checker: 1 ok, 0.5 degraded, 0 down",
	}, []string{"checker"})
)

// IncConversion counts one successful conversion.
func IncConversion(operation string) {
	conversionsTotal.WithLabelValues(operation).Inc()
}

// IncConversionError counts one rejected conversion.
func IncConversionError(operation, reason string) {
	conversionErrorsTotal.WithLabelValues(operation, reason).Inc()
}

// ObserveHTTPRequest records a finished request. route is the matched route
// template, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncRateLimited counts one request rejected by the rate limiter.
func IncRateLimited() {
	httpRateLimitedTotal.Inc()
}

// ObserveMarkerOperation records a marker store call and its outcome.
func ObserveMarkerOperation(backend, operation string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	markerOperationsTotal.WithLabelValues(backend, operation, result).Inc()
	markerOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// SetHealthStatus publishes the latest result of a health checker.
func SetHealthStatus(checker string, value float64) {
	healthStatus.WithLabelValues(checker).Set(value)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
