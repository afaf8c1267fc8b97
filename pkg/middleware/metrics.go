package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds request counters and latency histograms labelled by module.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by module, method and status code.",
		}, []string{"module", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by module.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"module"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Instrument returns middleware recording requests for the named module.
func (m *Metrics) Instrument(module string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			m.requests.WithLabelValues(module, r.Method, strconv.Itoa(rec.status)).Inc()
			m.duration.WithLabelValues(module).Observe(time.Since(start).Seconds())
		})
	}
}
