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

	"dispatch/api"
	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/rabbitmq"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs, logger)
	mirror, closeMirror := mustConnectEventMirror(configs, logger)
	defer closeMirror()

	app := cmd.NewCompositionRoot(configs, logger, gormDB, mirror)
	restoreSnapshot(ctx, app, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	startWebServer(ctx, app, configs.HTTPPort, logger)

	jobManager.StopAll()
	app.Hub().Close()
	logger.Info("dispatch stopped")
}

func mustOpenDatabase(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	if !configs.DatabaseEnabled() {
		logger.Info("DB_HOST is not set, snapshots are kept in memory")
		return nil
	}

	gormDB, err := postgres.Open(configs.Postgres())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func mustConnectEventMirror(configs cmd.Config, logger *slog.Logger) (ports.Broadcaster, func()) {
	if !configs.EventMirrorEnabled() {
		return nil, func() {}
	}

	conn, err := rabbitmq.Connect(configs.AMQPURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	publisher, err := rabbitmq.NewPublisher(conn.Channel(), configs.AMQPExchange, logger)
	if err != nil {
		_ = conn.Close()
		log.Fatalf("Error creating event publisher: %v", err)
	}

	return publisher, func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close RabbitMQ connection", "error", err)
		}
	}
}

func restoreSnapshot(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) {
	result, err := app.CreateRestoreSnapshotCommandHandler().Handle(ctx, commands.NewRestoreSnapshotCommand())
	if err != nil {
		log.Fatalf("Error restoring snapshot: %v", err)
	}
	logger.Info("snapshot restored",
		"orders", result.Orders,
		"riders", result.Riders,
		"batches", result.Batches,
	)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading API document: %v", err)
	}
	if err = api.RegisterSwagger(doc); err != nil {
		log.Fatalf("Error registering API document: %v", err)
	}

	e, err := httpin.NewRouter(app.CreateHTTPServer(), doc, logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
