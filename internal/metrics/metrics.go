// Package metrics exposes Prometheus collectors for the activity service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "activities",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "activities",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	signups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "registry",
			Name:      "signups_total",
			Help:      "Total signup attempts by outcome.",
		},
		[]string{"outcome"},
	)

	unregisters = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "registry",
			Name:      "unregisters_total",
			Help:      "Total unregister attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		signups,
		unregisters,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records a completed request.
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	method = strings.ToUpper(method)
	path = canonicalPath(path)
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncInFlight increments the in-flight request gauge.
func IncInFlight() { httpInFlight.Inc() }

// DecInFlight decrements the in-flight request gauge.
func DecInFlight() { httpInFlight.Dec() }

// RecordSignup records a signup attempt outcome ("ok", "not_found",
// "full", "duplicate").
func RecordSignup(outcome string) {
	signups.WithLabelValues(outcome).Inc()
}

// RecordUnregister records an unregister attempt outcome ("ok",
// "not_found", "not_member").
func RecordUnregister(outcome string) {
	unregisters.WithLabelValues(outcome).Inc()
}

// canonicalPath collapses activity names out of paths so the label set
// stays bounded.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if parts[0] != "activities" {
		return "/" + parts[0]
	}
	if len(parts) == 1 {
		return "/activities"
	}
	if len(parts) >= 3 {
		return "/activities/:name/" + parts[2]
	}
	return "/activities/:name"
}
