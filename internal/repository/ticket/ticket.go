package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
	service "tracker/internal/service/ticket"
)

const table = "tickets"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.querier.Ping(ctx)
}

// NextTicketNumber следующий порядковый номер для префикса TKT-.
func (r *Repository) NextTicketNumber(ctx context.Context) (int64, error) {
	var next int64
	err := r.querier.QueryRow(ctx, `
		SELECT COALESCE(MAX(SUBSTRING(ticket_number FROM 5)::BIGINT), 0) + 1
		FROM tickets
		WHERE ticket_number ~ '^TKT-[0-9]+$'
	`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("unexpected ticket repository next number error: %w", err)
	}
	return next, nil
}

func (r *Repository) NextTicketVersion(ctx context.Context, number string) (int, error) {
	var version int32
	if err := r.querier.QueryRow(ctx, `SELECT get_next_ticket_version($1)`, number).Scan(&version); err != nil {
		return 0, fmt.Errorf("unexpected ticket repository next version error: %w", err)
	}
	return int(version), nil
}

func (r *Repository) CreateTicket(ctx context.Context, t entities.Ticket) (*entities.Ticket, error) {
	query, args, err := qb.Insert(table).
		Columns(insertColumns...).
		Values(FromDomain(&t).insertValues()...).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository create error: %w", err)
	}

	var model TicketDB
	if err := r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, service.ErrConflict
		}
		return nil, fmt.Errorf("unexpected ticket repository create error: %w", err)
	}
	return ToDomain(&model), nil
}

func (r *Repository) GetCurrent(ctx context.Context, number string) (*entities.Ticket, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"ticket_number": number}).
		OrderBy("version DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository get error: %w", err)
	}

	var model TicketDB
	if err := r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrTicketNotFound
		}
		return nil, fmt.Errorf("unexpected ticket repository get error: %w", err)
	}
	return ToDomain(&model), nil
}

// Versions все версии тикета, от первой к последней.
func (r *Repository) Versions(ctx context.Context, number string) ([]entities.Ticket, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"ticket_number": number}).
		OrderBy("version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository versions error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository versions error: %w", err)
	}
	return ToDomainList(models), nil
}

// ListTicketVersions все версии тикетов, у которых хотя бы одна версия
// попадает в область видимости. Текущую версию по области фильтрует сервис.
func (r *Repository) ListTicketVersions(ctx context.Context, filter entities.TicketFilter) ([]entities.Ticket, error) {
	column := "created_by"
	if filter.Scope == entities.TicketScopeIncoming {
		column = "assigned_to"
	}

	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Expr(
			"ticket_number IN (SELECT ticket_number FROM tickets WHERE "+column+" = ?)",
			filter.Actor,
		)).
		OrderBy("original_created_at DESC", "ticket_number", "version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}
	return ToDomainList(models), nil
}

// AllTicketVersions весь журнал тикетов для отчёта по исполнителям.
func (r *Repository) AllTicketVersions(ctx context.Context) ([]entities.Ticket, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		OrderBy("ticket_number", "version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository all versions error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository all versions error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...interface{}) ([]TicketDB, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []TicketDB
	for rows.Next() {
		var model TicketDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, rows.Err()
}
