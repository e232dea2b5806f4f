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

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/jobs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("freight service failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	configs, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, clockwork.NewRealClock(), logger)
	if err != nil {
		return err
	}

	gauges, err := jobs.NewMarketplaceGauges(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	jobManager := jobs.NewJobManager(configs.StatsSchedule, app.CreateGetMarketplaceStatsQueryHandler(), gauges, logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, logger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	if configs.Storage != cmd.StoragePostgres {
		return nil, nil
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	var doc *openapi3.T
	if configs.SwaggerUI {
		var err error
		if doc, err = httpin.LoadOpenAPI(ctx); err != nil {
			return err
		}
	}

	e, err := httpin.NewRouter(app.CreateHTTPServer(), doc, app.Clock(), logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", configs.HTTPPort, "storage", configs.Storage)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
