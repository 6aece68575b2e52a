package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/composite-devices/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/composite-devices/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/composite-devices/{id}", "418"))
	assert.Equal(t, 3.0, got)
}

func TestObserveSeriesAndInserts(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSeries(10, 4)
	m.ObserveSeries(0, 0)
	m.ObserveInsert(true)
	m.ObserveInsert(true)
	m.ObserveInsert(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.inserts.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inserts.WithLabelValues("error")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), "sensors_resample_points_count 2"))
}
