package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yakoovad/mergington-activities/internal/api"
	"github.com/yakoovad/mergington-activities/internal/config"
	"github.com/yakoovad/mergington-activities/internal/db"
	"github.com/yakoovad/mergington-activities/internal/metrics"
	"github.com/yakoovad/mergington-activities/internal/repository"
	"github.com/yakoovad/mergington-activities/internal/service"
	"github.com/yakoovad/mergington-activities/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting application", zap.String("version", cfg.App.Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	activities := service.NewActivityService(db.NewMutexTransactor()).
		WithActivityRepo(repository.NewMemActivityRepository()).
		WithMetrics(metrics.New(prometheus.DefaultRegisterer))

	if serr := activities.Seed(ctx, repository.SeedActivities()); serr != nil {
		logger.Fatal("failed to seed activities", zap.Any("error", serr))
	}

	e := echo.New()
	e.HideBanner = true

	handler := api.NewHandler(logger).
		WithActivityService(activities).
		WithHealthChecker(api.MustNewHealthChecker(cfg.App.Version, api.RegistryCheck(activities)))

	handler.RegisterRoutes(e)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", zap.String("address", cfg.HTTP.Address))
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		return e.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}

	logger.Info("server stopped")
}
