// Package metrics owns the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups HTTP and domain collectors on one registry. All methods are
// safe on a nil receiver so workflows can run without instrumentation.
type Metrics struct {
	reg *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge

	registrations prometheus.Counter
	loginFailures prometheus.Counter
	postsCreated  prometheus.Counter
}

// New registers every collector on a fresh registry, including the Go
// runtime and process collectors.
func New() (*Metrics, error) {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests currently being served.",
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "postwall_user_registrations_total",
			Help: "Successful sign-ups.",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "postwall_login_failures_total",
			Help: "Log-in attempts rejected for bad credentials.",
		}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "postwall_posts_created_total",
			Help: "Posts created.",
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.inflight,
		m.registrations, m.loginFailures, m.postsCreated,
	} {
		if err := m.reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// RequestStarted returns the function to call when the request finishes.
// route should be the matched pattern, never the raw path.
func (m *Metrics) RequestStarted(method string) func(route string, status int) {
	if m == nil {
		return func(string, int) {}
	}
	start := time.Now()
	m.inflight.Inc()
	return func(route string, status int) {
		m.inflight.Dec()
		if route == "" {
			route = "unmatched"
		}
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	}
}

func (m *Metrics) UserRegistered() {
	if m != nil {
		m.registrations.Inc()
	}
}

func (m *Metrics) LoginFailed() {
	if m != nil {
		m.loginFailures.Inc()
	}
}

func (m *Metrics) PostCreated() {
	if m != nil {
		m.postsCreated.Inc()
	}
}
