// Package http provides the HTTP delivery layer for the media link service.
// This package serves the link generator page, the JSON API it talks to and
// the endpoint generated links point at.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/media-link/docs"
	"github.com/vadimbarashkov/media-link/internal/metrics"
	"github.com/vadimbarashkov/media-link/internal/notify"
	"github.com/vadimbarashkov/media-link/internal/ui"
	oteltrace "go.opentelemetry.io/otel/trace"

	httpSwagger "github.com/swaggo/http-swagger"
)

type routerOptions struct {
	publicOrigin   string
	allowedOrigins []string
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	statusTimeout  time.Duration
	copyRevert     time.Duration
}

type RouterOption func(*routerOptions)

// WithPublicOrigin makes generated links use origin instead of the request's own.
func WithPublicOrigin(origin string) RouterOption {
	return func(o *routerOptions) {
		o.publicOrigin = origin
	}
}

// WithAllowedOrigins sets the origins allowed by CORS.
func WithAllowedOrigins(origins []string) RouterOption {
	return func(o *routerOptions) {
		if len(origins) > 0 {
			o.allowedOrigins = origins
		}
	}
}

// WithPageTimings sets how long the page shows status messages and keeps the
// copy control confirmed. Non-positive values keep the defaults.
func WithPageTimings(statusTimeout, copyRevert time.Duration) RouterOption {
	return func(o *routerOptions) {
		if statusTimeout > 0 {
			o.statusTimeout = statusTimeout
		}
		if copyRevert > 0 {
			o.copyRevert = copyRevert
		}
	}
}

// WithMetrics instruments the router with m and exposes h at /metrics.
func WithMetrics(m *metrics.Metrics, h http.Handler) RouterOption {
	return func(o *routerOptions) {
		o.metrics = m
		o.metricsHandler = h
	}
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the media link service.
func NewRouter(logger *httplog.Logger, linkUseCase linkUseCase, opts ...RouterOption) *chi.Mux {
	o := routerOptions{
		allowedOrigins: []string{"https://*"},
		statusTimeout:  notify.DefaultTimeout,
		copyRevert:     ui.DefaultCopyRevert,
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   o.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(traceID)
	r.Use(middleware.Recoverer)

	if o.metrics != nil {
		r.Use(o.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", o.metricsHandler)
	}

	r.Get("/", handleIndex)
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(docs.Swagger)
	})

	h := newLinkHandler(linkUseCase, validator.New(), o.publicOrigin)

	r.Get(linkUseCase.BasePath(), h.resolveLink)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)
		r.Get("/settings", handleSettings(o.statusTimeout, o.copyRevert))

		r.Post("/links", h.generateLink)
		r.Get("/preview", h.previewLink)
		r.Post("/uploads", h.rejectUpload)
	})

	return r
}

// traceID puts the trace id of the request span into the request log entry
// and the X-Trace-Id response header.
func traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sc := oteltrace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
			id := sc.TraceID().String()
			w.Header().Set("X-Trace-Id", id)
			httplog.LogEntrySetField(r.Context(), "trace_id", slog.StringValue(id))
		}

		next.ServeHTTP(w, r)
	})
}
