package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vadimbarashkov/media-link/internal/config"
	"github.com/vadimbarashkov/media-link/internal/metrics"
	"github.com/vadimbarashkov/media-link/internal/tracing"
	"github.com/vadimbarashkov/media-link/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/media-link/internal/adapter/delivery/http"
)

const serviceName = "media-link"

// NewLogger builds the service logger: JSON in production, concise text elsewhere.
func NewLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger(serviceName, httplog.Options{
		JSON:           cfg.Env == config.EnvProd,
		LogLevel:       cfg.SlogLevel(),
		Concise:        cfg.Env != config.EnvProd,
		RequestHeaders: cfg.Env == config.EnvDev,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

// NewHandler wires the use case, metrics and router into the service handler.
// Every request gets a server span from tp, continuing any incoming trace context.
func NewHandler(cfg *config.Config, logger *httplog.Logger, reg *prometheus.Registry, tp oteltrace.TracerProvider) http.Handler {
	m := metrics.New(reg)
	uc := usecase.New(cfg.Link.BasePath, m)

	router := delivery.NewRouter(
		logger,
		uc,
		delivery.WithPublicOrigin(cfg.Link.PublicOrigin),
		delivery.WithAllowedOrigins(cfg.CORS.AllowedOrigins),
		delivery.WithPageTimings(cfg.UI.StatusTimeout, cfg.UI.CopyRevert),
		delivery.WithMetrics(m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	return otelhttp.NewHandler(router, serviceName,
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithPropagators(tracing.Propagator()),
	)
}

func Run(ctx context.Context, cfg *config.Config, logger *httplog.Logger) error {
	const op = "app.Run"

	tp, err := tracing.NewProvider(ctx, cfg.Tracing, serviceName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(tracing.Propagator())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        NewHandler(cfg, logger, reg, tp),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		logger.Info("starting server", "addr", server.Addr, "env", cfg.Env)

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		if err := tp.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown tracer provider: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
