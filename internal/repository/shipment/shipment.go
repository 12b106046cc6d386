package shipment

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
)

const table = "shipments_updates"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) LatestVersionLines(ctx context.Context, serial string) ([]entities.ShipmentUpdate, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"serial_number": serial}).
		Where(sq.Expr("version = (SELECT MAX(version) FROM shipments_updates WHERE serial_number = ?)", serial)).
		OrderBy("line_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository latest version error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository latest version error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) NextVersion(ctx context.Context, serial string) (int, error) {
	var version int32
	if err := r.querier.QueryRow(ctx, `SELECT get_next_version($1)`, serial).Scan(&version); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository next version error: %w", err)
	}
	return int(version), nil
}

func (r *Repository) NextPK(ctx context.Context) (int64, error) {
	var pk int64
	if err := r.querier.QueryRow(ctx, `SELECT COALESCE(MAX(pk), 0) + 1 FROM shipments_updates`).Scan(&pk); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository next pk error: %w", err)
	}
	return pk, nil
}

func (r *Repository) AppendUpdates(ctx context.Context, updates []entities.ShipmentUpdate) ([]entities.ShipmentUpdate, error) {
	builder := qb.Insert(table).Columns(insertColumns...)
	for i := range updates {
		builder = builder.Values(FromDomain(&updates[i]).insertValues()...)
	}
	builder = builder.Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository append error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository append error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) History(ctx context.Context, serial string) ([]entities.ShipmentUpdate, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"serial_number": serial}).
		OrderBy("created_at", "version", "line_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository history error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository history error: %w", err)
	}
	return ToDomainList(models), nil
}

// ListUpdates весь журнал, новые записи первыми.
func (r *Repository) ListUpdates(ctx context.Context) ([]entities.ShipmentUpdate, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		OrderBy("created_at DESC", "version DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) SearchSerials(ctx context.Context, fragment string, limit int) ([]entities.ShipmentCandidate, error) {
	rows, err := r.querier.Query(ctx, `
		SELECT serial_number, driver_name, driver_phone, vehicle, transporter
		FROM (
			SELECT DISTINCT ON (serial_number) serial_number, driver_name, driver_phone, vehicle, transporter, created_at
			FROM shipments_updates
			WHERE serial_number ILIKE $1
			ORDER BY serial_number, created_at DESC, version DESC
		) latest
		ORDER BY created_at DESC
		LIMIT $2
	`, repository.ContainsPattern(fragment), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository search error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.ShipmentCandidate, 0, limit)
	for rows.Next() {
		var c entities.ShipmentCandidate
		if err := rows.Scan(&c.SerialNumber, &c.DriverName, &c.DriverPhone, &c.Vehicle, &c.Transporter); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository search error: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository search error: %w", err)
	}
	return candidates, nil
}

func (r *Repository) ExistingPKs(ctx context.Context, pks []int64) ([]int64, error) {
	if len(pks) == 0 {
		return []int64{}, nil
	}

	rows, err := r.querier.Query(ctx, `SELECT DISTINCT pk FROM shipments_updates WHERE pk = ANY($1)`, pks)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository existing pks error: %w", err)
	}

	existing, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository existing pks error: %w", err)
	}
	return existing, nil
}

func (r *Repository) CopyUpdates(ctx context.Context, updates []entities.ShipmentUpdate) (int64, error) {
	rows := make([][]interface{}, len(updates))
	for i := range updates {
		rows[i] = FromDomain(&updates[i]).insertValues()
	}

	copied, err := r.querier.CopyFrom(ctx, pgx.Identifier{table}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository copy error: %w", err)
	}
	return copied, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...interface{}) ([]ShipmentUpdateDB, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []ShipmentUpdateDB
	for rows.Next() {
		var model ShipmentUpdateDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, rows.Err()
}
