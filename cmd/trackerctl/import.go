package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"tracker/internal/app"
	"tracker/internal/entities"
	"tracker/pkg/logger"
)

var (
	importActor string

	importCmd = &cobra.Command{
		Use:   "import",
		Short: "Bulk-import a spreadsheet, skipping rows that already exist",
		Long: `Bulk-import an .xlsx/.xlsm spreadsheet. The first row is the header;
columns are matched by name. Rows already present in the database are skipped
and rows without required columns are reported with their row number.`,
	}
)

type importFunc func(ctx context.Context, cli *app.CLIApp, actor string, r io.Reader, filename string) (*entities.UploadResult, error)

func init() {
	importCmd.PersistentFlags().StringVar(&importActor, "actor", "trackerctl", "user id recorded as created_by")

	importCmd.AddCommand(
		&cobra.Command{
			Use:   "dispatches <file>",
			Short: "Import LTI/STO lines",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runImport(cmd, args[0], func(ctx context.Context, cli *app.CLIApp, actor string, r io.Reader, filename string) (*entities.UploadResult, error) {
					return cli.DispatchService.ImportDispatches(ctx, actor, r, filename)
				})
			},
		},
		&cobra.Command{
			Use:   "shipments <file>",
			Short: "Import shipment status rows",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runImport(cmd, args[0], func(ctx context.Context, cli *app.CLIApp, actor string, r io.Reader, filename string) (*entities.UploadResult, error) {
					return cli.ShipmentService.ImportShipments(ctx, actor, r, filename)
				})
			},
		},
	)
}

func runImport(cmd *cobra.Command, path string, do importFunc) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return withPool(cmd.Context(), func(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
		cli, err := app.InitializeCLIApp(ctx, pool, pgxv5.DefaultCtxGetter)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}

		result, err := do(ctx, cli, importActor, file, filepath.Base(path))
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}

		log.With(
			logger.NewField("file", path),
			logger.NewField("uploaded", result.Uploaded),
			logger.NewField("skipped", result.Skipped),
			logger.NewField("rejected", len(result.Rejected)),
		).Info("import finished")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "uploaded: %d\nskipped: %d\n", result.Uploaded, result.Skipped)
		for _, row := range result.Rejected {
			fmt.Fprintf(out, "row %d rejected, missing: %v\n", row.Row, row.Missing)
		}
		return nil
	})
}
