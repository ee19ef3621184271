package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftgo/api"
	"swiftgo/cmd"
	httpin "swiftgo/internal/adapters/in/http"
	"swiftgo/internal/jobs"
	"swiftgo/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger, syncLogger, err := logger.New(logger.Options{Level: configs.LogLevel, Format: configs.LogFormat})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = syncLogger()
	}()
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra, err := cmd.NewInfrastructure(ctx, configs, appLogger)
	if err != nil {
		log.Fatalf("Error connecting infrastructure: %v", err)
	}
	defer func() {
		if closeErr := infra.Close(); closeErr != nil {
			appLogger.Error("Error closing infrastructure", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(infra.UoWFactory, infra.Publisher)
	if tracking := infra.TrackingFactory(); tracking != nil {
		app.WithTracking(tracking)
	}

	jobManager := startJobs(configs, infra, app, appLogger)
	defer jobManager.StopAll()

	e, err := newWebServer(app, appLogger)
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}
	runWebServer(ctx, e, configs.HTTPPort, appLogger)
}

func startJobs(configs cmd.Config, infra *cmd.Infrastructure, app *cmd.CompositionRoot, logger *slog.Logger) *jobs.JobManager {
	scheduled := []jobs.Job{
		jobs.NewReportJob(app.CreateGetShippingReportQueryHandler(), configs.ReportSchedule, logger),
	}
	if infra.Store != nil {
		scheduled = append(scheduled, jobs.NewSnapshotJob(infra.Store, configs.StateFile, configs.SnapshotSchedule, logger))
	}

	jobManager := jobs.NewJobManager(logger, scheduled...)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(httpin.NewServer(app.HTTPHandlers()), doc, logger)
}

func runWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
