package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/vadimbarashkov/media-link/internal/config"
	"github.com/vadimbarashkov/media-link/internal/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewHandler(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	logger := httplog.NewLogger("", httplog.Options{Writer: io.Discard})

	sr := tracetest.NewSpanRecorder()
	tp, err := tracing.NewProvider(context.Background(), cfg.Tracing, "test", sdktrace.WithSpanProcessor(sr))
	if err != nil {
		t.Fatalf("Failed to create tracer provider: %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	server := httptest.NewServer(NewHandler(cfg, logger, prometheus.NewRegistry(), tp))
	t.Cleanup(server.Close)

	e := httpexpect.Default(t, server.URL)

	link := e.POST("/api/v1/links").
		WithJSON(map[string]string{"url": "https://example.com/a.png"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()

	link.HasValue("link", server.URL+"/api/main?url=aHR0cHM6Ly9leGFtcGxlLmNvbS9hLnBuZw%3D%3D")

	e.GET("/api/main").
		WithQuery("url", "aHR0cHM6Ly9leGFtcGxlLmNvbS9hLnBuZw==").
		WithRedirectPolicy(httpexpect.DontFollowRedirects).
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("https://example.com/a.png")

	e.GET("/metrics").
		Expect().
		Status(http.StatusOK).
		Body().
		Contains(`media_link_links_generated_total{kind="image"} 1`).
		Contains(`media_link_links_resolved_total{kind="image"} 1`)

	e.GET("/docs/swagger.yml").
		Expect().
		Status(http.StatusOK).
		Body().Contains("/api/v1/links")

	e.GET("/api/v1/settings").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("status_timeout_ms", 3000).
		HasValue("copy_revert_ms", 2000)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"

	e.GET("/api/v1/ping").
		WithHeader("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01").
		Expect().
		Status(http.StatusOK).
		Header("X-Trace-Id").IsEqual(traceID)

	var found bool
	for _, span := range sr.Ended() {
		if span.SpanContext().TraceID().String() == traceID {
			found = true
			assert.Equal(t, "00f067aa0ba902b7", span.Parent().SpanID().String())
		}
	}
	assert.True(t, found, "no span recorded for the incoming trace")
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&config.Config{Env: config.EnvProd, LogLevel: "warn"})

	assert.NotNil(t, logger)
	assert.True(t, logger.Options.JSON)
	assert.False(t, logger.Options.Concise)
}
