package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"tracker/internal/app"
	"tracker/internal/handlers/kafka-consumer/shipment_status_reported"
	"tracker/internal/handlers/rest/healthcheck_head"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/dotenv"
	"tracker/internal/pkg/kafka"
	metrics_system "tracker/internal/pkg/metrics"
	"tracker/internal/pkg/postgres"
	"tracker/pkg/logger"
	"tracker/pkg/logger/zap_adapter"
)

var errConsumerStopped = errors.New("kafka consumer stopped before shutdown")

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("process", "worker-shipment-status"))

	if err := dotenv.Load(os.Args[1:]); err != nil {
		mainLog.Error("failed to load environment", logger.NewField("error", err))
		return
	}

	cfg, err := config.LoadWorker()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), appLogger, cfg); err != nil {
		mainLog.Error("worker failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		readinessDrainDelay = 5 * time.Second
		probeShutdownPeriod = 10 * time.Second
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(
		logger.NewField("topic", cfg.Kafka.Topic),
		logger.NewField("group", cfg.Kafka.ConsumerGroup),
	)

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	workerApp, err := app.InitializeKafkaWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	handler := shipment_status_reported.New(
		log,
		workerApp.ShipmentService,
		cfg.Kafka.Handlers.ShipmentStatusReported.ProcessTimeout,
	)

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, handler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			runLog.Error("close kafka consumer", logger.NewField("error", err))
		}
	}()

	metrics_system.StartSystemMetricsCollector(ctx)

	var isShuttingDown atomic.Bool

	// чтение продолжается после SIGTERM, пока проба снимает под с балансировки
	consumeCtx, stopConsuming := context.WithCancel(context.WithoutCancel(ctx))
	defer stopConsuming()

	probe := &http.Server{
		Addr:              ":" + cfg.Kafka.PortHealthcheck,
		Handler:           initProbeRouter(&isShuttingDown),
		ReadHeaderTimeout: 5 * time.Second, // gosec G112
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := consumer.Start(consumeCtx)
		switch {
		case consumeCtx.Err() != nil:
			return nil
		case err != nil:
			return err
		default:
			return errConsumerStopped
		}
	})

	group.Go(func() error {
		runLog.Info("probe server starting", logger.NewField("addr", probe.Addr))
		if err := probe.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("probe server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		if ctx.Err() != nil {
			runLog.Info("shutdown signal received, draining")
			isShuttingDown.Store(true)
			time.Sleep(readinessDrainDelay)
		}
		stopConsuming()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), probeShutdownPeriod)
		defer cancel()
		if err := probe.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("probe server shutdown: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	runLog.Info("worker stopped")
	return nil
}

func initProbeRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return router
}
