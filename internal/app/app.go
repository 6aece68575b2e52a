package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/adapter/store/postgres"
	"github.com/dayanaadylkhanova/sensor-dashboard/internal/adapter/store/sqlite"
	http_server "github.com/dayanaadylkhanova/sensor-dashboard/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/sensor-dashboard/internal/service"
	"github.com/dayanaadylkhanova/sensor-dashboard/pkg/config"
	"github.com/dayanaadylkhanova/sensor-dashboard/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

// store is what the app needs from either backend.
type store interface {
	service.Store
	Init(ctx context.Context) error
	Seed(ctx context.Context) error
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	store     store
	simulator *service.Simulator
	server    *http_server.Server
}

func New(ctx context.Context, cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Store
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	if cfg.SeedDemo {
		if err := st.Seed(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("seed demo catalog: %w", err)
		}
	}

	// 2) Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 3) Services
	dash := service.NewDashboard(log, st, st,
		service.WithDefaultWindow(cfg.DefaultWindow),
		service.WithSeriesObserver(m),
	)

	var sim *service.Simulator
	if cfg.SimulatorEnabled {
		sim = service.NewSimulator(log, st, st, m, service.SimulatorConfig{
			Every:   cfg.SimulatorEvery,
			Devices: cfg.SimulatorDevices,
		})
	}

	// 4) HTTP server
	srv := http_server.NewServer(log, cfg.ListenAddr, dash, m)

	return &App{
		cfg:       cfg,
		info:      info,
		log:       log,
		store:     st,
		simulator: sim,
		server:    srv,
	}, nil
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.SQLitePath, log)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseURL, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (a *App) Run(ctx context.Context) error {
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.simulator != nil {
		go a.simulator.Run(bgCtx)
	}

	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server failed", zap.Error(err))
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown: stop writers before the pool goes away.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	if a.simulator != nil {
		a.simulator.Stop()
	}
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error("http shutdown", zap.Error(err))
		if errors.Is(runErr, ErrAppShutdownNormal) {
			runErr = ErrAppShutdownWithError
		}
	}
	a.store.Close()

	return runErr
}
