package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/dayanaadylkhanova/sensor-dashboard/internal/app"
	"github.com/dayanaadylkhanova/sensor-dashboard/pkg/config"
	"github.com/dayanaadylkhanova/sensor-dashboard/pkg/logger"
	"go.uber.org/zap"
)

var (
	AppName      = "sensors-api"
	AppBuildTime = "dev"
	AppCommit    = "dev"
	AppRelease   = "dev"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("can't parse app config: %v", err)
	}
	if cfg.MaxCPU > 0 {
		runtime.GOMAXPROCS(cfg.MaxCPU)
	}

	zl := logger.NewJSON(cfg.LogLevel)
	zap.ReplaceGlobals(zl)

	// SIGINT/SIGTERM cancel ctx; a second signal kills the process the default way.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, *cfg, zl)
	stop()

	code := exitCode(zl, err)
	_ = zl.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, zl *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zl.Error("panic error", zap.Error(fmt.Errorf("%v", r)))
			err = app.ErrAppShutdownWithError
		}
	}()

	info := &app.AppInfo{
		Name:      AppName,
		BuildTime: AppBuildTime,
		Commit:    AppCommit,
		Release:   AppRelease,
	}
	zl.Info(fmt.Sprintf("Application `%s` %s started.", AppName, AppRelease),
		zap.String("store", cfg.StoreDriver),
		zap.String("commit", AppCommit),
	)

	application, err := app.New(ctx, cfg, info, zl)
	if err != nil {
		return fmt.Errorf("%w: %w", app.ErrAppStartup, err)
	}
	return application.Run(ctx)
}

// exitCode logs how the app ended and maps it to a process exit status.
func exitCode(zl *zap.Logger, err error) int {
	switch {
	case err == nil, errors.Is(err, app.ErrAppShutdownNormal):
		zl.Warn("application is shutdown")
		return 0
	case errors.Is(err, app.ErrAppStartup):
		zl.Error("can't run application", zap.Error(err))
		return 1
	case errors.Is(err, app.ErrAppShutdownWithError):
		zl.Error("application is shutdown with error", zap.Error(err))
		return 2
	default:
		zl.Error("application stopped", zap.Error(err))
		return 1
	}
}
