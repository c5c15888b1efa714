package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vadimbarashkov/media-link/internal/entity"
)

func TestMetrics_Links(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.LinkGenerated(entity.MediaImage)
	m.LinkGenerated(entity.MediaImage)
	m.LinkRejected(entity.ErrInvalidURL)
	m.LinkResolved(entity.MediaVideo)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.linksGenerated.WithLabelValues("image")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.linksRejected.WithLabelValues("invalid_url")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.linksResolved.WithLabelValues("video")))
}

func TestMetrics_Middleware(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/items/{id}", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInflight))
}
