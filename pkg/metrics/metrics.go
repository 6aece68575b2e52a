package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the sensors API.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	seriesPoints  prometheus.Histogram
	seriesMatched prometheus.Histogram
	inserts       *prometheus.CounterVec
}

// New registers all collectors on reg. Passing a fresh prometheus.NewRegistry() keeps tests isolated.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensors_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sensors_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		seriesPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sensors_resample_points",
			Help:    "Number of grid points produced per resampled series",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		seriesMatched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sensors_resample_matched_ratio",
			Help:    "Share of grid points carrying a measured value",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensors_simulator_inserts_total",
			Help: "Simulated measurements written, by result",
		}, []string{"result"}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.seriesPoints, m.seriesMatched, m.inserts)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveSeries(points, matched int) {
	m.seriesPoints.Observe(float64(points))
	if points > 0 {
		m.seriesMatched.Observe(float64(matched) / float64(points))
	}
}

func (m *Metrics) ObserveInsert(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.inserts.WithLabelValues(result).Inc()
}

// Middleware counts requests and latency per chi route pattern, so path parameters
// don't blow up label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
