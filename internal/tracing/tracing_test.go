package tracing

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vadimbarashkov/media-link/internal/config"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider(t *testing.T) {
	t.Run("without exporter", func(t *testing.T) {
		sr := tracetest.NewSpanRecorder()

		tp, err := NewProvider(context.Background(), config.Tracing{SampleRatio: 1}, "test", sdktrace.WithSpanProcessor(sr))
		if err != nil {
			t.Fatalf("Failed to create provider: %v", err)
		}
		t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

		_, span := tp.Tracer("test").Start(context.Background(), "op")
		span.End()

		assert.True(t, span.SpanContext().IsValid())
		assert.Len(t, sr.Ended(), 1)
	})

	t.Run("never sampled", func(t *testing.T) {
		sr := tracetest.NewSpanRecorder()

		tp, err := NewProvider(context.Background(), config.Tracing{SampleRatio: 0}, "test", sdktrace.WithSpanProcessor(sr))
		if err != nil {
			t.Fatalf("Failed to create provider: %v", err)
		}
		t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

		_, span := tp.Tracer("test").Start(context.Background(), "op")
		span.End()

		assert.False(t, span.SpanContext().IsSampled())
		assert.Empty(t, sr.Ended())
	})

	t.Run("with exporter", func(t *testing.T) {
		tp, err := NewProvider(context.Background(), config.Tracing{
			Endpoint:    "localhost:4317",
			Insecure:    true,
			SampleRatio: 1,
		}, "test")
		if err != nil {
			t.Fatalf("Failed to create provider: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_ = tp.Shutdown(ctx)
	})
}

func TestPropagator(t *testing.T) {
	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	h := http.Header{}
	h.Set("traceparent", traceparent)

	ctx := Propagator().Extract(context.Background(), propagation.HeaderCarrier(h))

	out := http.Header{}
	Propagator().Inject(ctx, propagation.HeaderCarrier(out))

	assert.Equal(t, traceparent, out.Get("traceparent"))
}
