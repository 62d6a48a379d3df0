// Package metrics exposes Prometheus instruments for the HTTP surface.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics carries the request-level instruments.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP instruments on the default registerer.
func NewHTTPMetrics() *HTTPMetrics {
	return newHTTPMetrics(prometheus.DefaultRegisterer)
}

func newHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status_code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	registerer.MustRegister(requests, duration)

	return &HTTPMetrics{
		requests: requests,
		duration: duration,
	}
}

// Observe records a single request outcome.
func (m *HTTPMetrics) Observe(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if strings.TrimSpace(route) == "" {
		route = "unknown"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// GinMiddleware records request counts and latency per matched route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Observe(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
