// Package metrics exposes Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics bundles the request counters and histograms recorded per route.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authAttempts    prometheus.Counter
	authFailures    prometheus.Counter
}

// NewHTTPMetrics registers the metric families on the default registry.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	if serviceName == "" {
		serviceName = "varse"
	}

	return &HTTPMetrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		authAttempts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_auth_attempts_total",
				Help: "Total number of authentication attempts",
			},
		),
		authFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_auth_failures_total",
				Help: "Total number of failed authentications",
			},
		),
	}
}

// Middleware tracks request count and latency per method, route and status.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			m.requestsTotal.WithLabelValues(method, path, status).Inc()
			m.requestDuration.WithLabelValues(method, path, status).Observe(duration)

			return err
		}
	}
}

// RecordAuthAttempt counts a login or token refresh attempt.
func (m *HTTPMetrics) RecordAuthAttempt() {
	m.authAttempts.Inc()
}

// RecordAuthFailure counts a rejected login or token refresh.
func (m *HTTPMetrics) RecordAuthFailure() {
	m.authFailures.Inc()
}
