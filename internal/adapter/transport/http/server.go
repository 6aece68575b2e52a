package http_server

import (
	"context"
	"net/http"
	"time"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/service"
	"github.com/dayanaadylkhanova/sensor-dashboard/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

type Server struct {
	log     *zap.Logger
	addr    string
	dash    service.DashboardPort
	handler http.Handler
	httpSrv *http.Server
}

// NewServer wires the router. m may be nil, in which case /metrics is not served.
func NewServer(log *zap.Logger, addr string, dash service.DashboardPort, m *metrics.Metrics) *Server {
	s := &Server{log: log, addr: addr, dash: dash}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(log))
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Route("/api", func(r chi.Router) {
		r.Get("/stations", s.handleStations())
		r.Get("/stations/{stationName}/composite-devices", s.handleStationDevices())
		r.Get("/composite-devices/{deviceID}", s.handleDevice())
		r.Get("/composite-devices/{deviceID}/data", s.handleSeries())
		r.Get("/composite-devices/{deviceID}/export", s.handleExport())
		r.Get("/thresholds", s.handleThresholds())
	})

	s.handler = gzhttp.GzipHandler(r)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
