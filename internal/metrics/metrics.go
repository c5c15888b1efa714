// Package metrics exposes Prometheus metrics for link generation and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vadimbarashkov/media-link/internal/entity"
)

const namespace = "media_link"

type Metrics struct {
	linksGenerated *prometheus.CounterVec
	linksRejected  *prometheus.CounterVec
	linksResolved  *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInflight prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		linksGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_generated_total",
			Help:      "Shareable links generated, by preview kind.",
		}, []string{"kind"}),
		linksRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_rejected_total",
			Help:      "Link requests rejected, by reason.",
		}, []string{"reason"}),
		linksResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_resolved_total",
			Help:      "Shareable links resolved, by preview kind.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_inflight_requests",
			Help:      "HTTP requests currently being served.",
		}),
	}

	reg.MustRegister(
		m.linksGenerated,
		m.linksRejected,
		m.linksResolved,
		m.httpRequests,
		m.httpDuration,
		m.httpInflight,
	)

	return m
}

func (m *Metrics) LinkGenerated(kind entity.MediaKind) {
	m.linksGenerated.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) LinkRejected(err error) {
	m.linksRejected.WithLabelValues(entity.ErrorCode(err)).Inc()
}

func (m *Metrics) LinkResolved(kind entity.MediaKind) {
	m.linksResolved.WithLabelValues(string(kind)).Inc()
}

// Middleware records request count, latency and in-flight requests. Routes are
// labelled by chi route pattern to keep label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		m.httpInflight.Inc()
		defer m.httpInflight.Dec()

		next.ServeHTTP(ww, r)

		route := "UNMATCHED"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
