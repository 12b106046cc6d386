package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"tracker/internal/pkg/migrations"
	"tracker/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the embedded schema migrations",
}

func init() {
	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrations(cmd, migrations.Up)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrations(cmd, migrations.Down)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE:  migrationStatus,
		},
	)
}

func runMigrations(cmd *cobra.Command, direction migrations.Direction) error {
	return withPool(cmd.Context(), func(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
		results, err := migrations.Run(ctx, pool, direction)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no migrations to apply")
			return nil
		}
		for _, r := range results {
			if r == nil {
				continue
			}
			log.With(
				logger.NewField("version", r.Source.Version),
				logger.NewField("direction", r.Direction),
				logger.NewField("duration", r.Duration.String()),
			).Info("migration applied")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %05d %s\n", r.Direction, r.Source.Version, r.Source.Path)
		}
		return nil
	})
}

func migrationStatus(cmd *cobra.Command, _ []string) error {
	return withPool(cmd.Context(), func(ctx context.Context, _ logger.Logger, pool *pgxpool.Pool) error {
		statuses, err := migrations.Status(ctx, pool)
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(w, "%05d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
		return w.Flush()
	})
}
