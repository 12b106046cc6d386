package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/dotenv"
	"tracker/internal/pkg/postgres"
	"tracker/pkg/logger"
	"tracker/pkg/logger/zap_adapter"
)

var (
	envFile string

	rootCmd = &cobra.Command{
		Use:   "trackerctl",
		Short: "Maintenance tool for the logistics tracker",
		Long: `trackerctl applies database migrations, bulk-imports LTI/STO and shipment
spreadsheets and prepares the admin key hash for the service configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return dotenv.LoadEnv(envFile)
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with POSTGRES_* variables")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(adminKeyCmd)
}

// withPool открывает пул по POSTGRES_* и закрывает его после fn.
func withPool(ctx context.Context, fn func(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error) error {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, zapLogger, pool)
}
