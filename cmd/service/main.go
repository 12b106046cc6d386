package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	application "tracker/internal/app"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/dotenv"
	metrics_system "tracker/internal/pkg/metrics"
	"tracker/internal/pkg/postgres"
	"tracker/pkg/logger"
	"tracker/pkg/logger/zap_adapter"
)

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
	mainLog := appLogger.With()

	mainLog.Info("starting tracker application")

	if err := dotenv.Load(os.Args[1:]); err != nil {
		mainLog.Error("failed to load environment", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // контексты остановки намеренно от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// BaseContext запросов: живёт дольше сигнала, отменяется после Shutdown.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := newServer(ongoingCtx, cfg.Server.Port, initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server))
	serverErr := serve(runLog.With(logger.NewField("server", "api")), server)

	// pprof слушает отдельный порт, наружу не публикуется
	var (
		pprofServer    *http.Server
		pprofServerErr <-chan error
	)
	if cfg.Server.PprofEnabled {
		pprofServer = newServer(ongoingCtx, cfg.Server.PprofPort, initPprofRouter(&isShuttingDown))
		pprofServerErr = serve(runLog.With(logger.NewField("server", "pprof")), pprofServer)
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал без pprof
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		if err := pprofServer.Shutdown(shutdownCtx); err != nil {
			runLog.Error("pprof server shutdown", logger.NewField("error", err))
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	stopOngoingGracefully()
	if shutdownErr != nil {
		runLog.Warn("graceful shutdown timed out, forcing close", logger.NewField("error", shutdownErr))
		time.Sleep(shutdownHardPeriod)
	}

	// очистка черновиков останавливается по ctx
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("server stopped")
	return nil
}

func newServer(baseCtx context.Context, port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return baseCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       60 * time.Second, // импорт таблиц до MaxUploadSize
		WriteTimeout:      2 * time.Minute,  // PDF отчёты, см. MIDDLEWARE_LONG_REQUEST_TIMEOUT
		IdleTimeout:       60 * time.Second,
	}
}

func serve(log logger.Logger, server *http.Server) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info("server starting", logger.NewField("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}
