package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
	"tracker/internal/service/dispatch"
	"tracker/pkg/paging"
)

const table = "lti_sto"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// LastDispatchNumber наибольший номер с префиксом, "" если таких нет.
func (r *Repository) LastDispatchNumber(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT lti_number
		FROM lti_sto
		WHERE lti_number ILIKE $1
		ORDER BY lti_number DESC
		LIMIT 1
	`

	var number string
	err := r.querier.QueryRow(ctx, query, prefix+"%").Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("unexpected dispatch repository last number error: %w", err)
	}
	return number, nil
}

func (r *Repository) CreateDispatchLines(ctx context.Context, lines []entities.Dispatch) ([]entities.Dispatch, error) {
	builder := qb.Insert(table).Columns(insertColumns...)
	for i := range lines {
		builder = builder.Values(FromDomain(&lines[i]).insertValues()...)
	}
	builder = builder.Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository create error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrConflict
		}
		return nil, fmt.Errorf("unexpected dispatch repository create error: %w", err)
	}
	return ToDomainList(models), nil
}

// CopyDispatchLines массовая загрузка через COPY, используется импортом.
func (r *Repository) CopyDispatchLines(ctx context.Context, lines []entities.Dispatch) (int64, error) {
	rows := make([][]interface{}, len(lines))
	for i := range lines {
		rows[i] = FromDomain(&lines[i]).insertValues()
	}

	copied, err := r.querier.CopyFrom(ctx, pgx.Identifier{table}, insertColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, dispatch.ErrConflict
		}
		return 0, fmt.Errorf("unexpected dispatch repository copy error: %w", err)
	}
	return copied, nil
}

func (r *Repository) ExistingLineKeys(ctx context.Context, numbers []string) ([]entities.LineKey, error) {
	if len(numbers) == 0 {
		return []entities.LineKey{}, nil
	}

	rows, err := r.querier.Query(ctx, `
		SELECT lti_number, lti_line
		FROM lti_sto
		WHERE lti_number = ANY($1)
	`, numbers)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository existing keys error: %w", err)
	}
	defer rows.Close()

	keys := make([]entities.LineKey, 0, len(numbers))
	for rows.Next() {
		var key entities.LineKey
		if err := rows.Scan(&key.Number, &key.Line); err != nil {
			return nil, fmt.Errorf("unexpected dispatch repository existing keys error: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository existing keys error: %w", err)
	}
	return keys, nil
}

// SearchDispatchNumbers по одному кандидату на номер, по возрастанию номера.
func (r *Repository) SearchDispatchNumbers(ctx context.Context, fragment string, limit int) ([]entities.DispatchCandidate, error) {
	query := `
		SELECT DISTINCT ON (lti_number) lti_number, lti_line, transporter_name, destination_location
		FROM lti_sto
		WHERE lti_number ILIKE $1
		ORDER BY lti_number, lti_line
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, repository.ContainsPattern(fragment), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository search error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.DispatchCandidate, 0, limit)
	for rows.Next() {
		var c entities.DispatchCandidate
		if err := rows.Scan(&c.LTINumber, &c.LineNumber, &c.Transporter, &c.Destination); err != nil {
			return nil, fmt.Errorf("unexpected dispatch repository search error: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository search error: %w", err)
	}
	return candidates, nil
}

func (r *Repository) GetDispatchLine(ctx context.Context, number, line string) (*entities.Dispatch, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"lti_number": number, "lti_line": line}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository get line error: %w", err)
	}

	var model DispatchDB
	if err := r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrDispatchNotFound
		}
		return nil, fmt.Errorf("unexpected dispatch repository get line error: %w", err)
	}
	return ToDomain(&model), nil
}

func (r *Repository) GetDispatchLines(ctx context.Context, number string) ([]entities.Dispatch, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"lti_number": number}).
		OrderBy("lti_line").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository get lines error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository get lines error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) ListDispatches(
	ctx context.Context,
	filter entities.DispatchFilter,
	page paging.Request,
) ([]entities.Dispatch, int, error) {
	where := filterWhere(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}

	var total int
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}

	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "lti_number DESC", "lti_line").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected dispatch repository list error: %w", err)
	}
	return ToDomainList(models), total, nil
}

func (r *Repository) FindDispatches(ctx context.Context, filter entities.DispatchFilter) ([]entities.Dispatch, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(filterWhere(filter)).
		OrderBy("lti_number", "lti_line").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository find error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository find error: %w", err)
	}
	return ToDomainList(models), nil
}

func filterWhere(filter entities.DispatchFilter) sq.And {
	where := sq.And{}
	if filter.Search != "" {
		pattern := repository.ContainsPattern(filter.Search)
		where = append(where, sq.Or{
			sq.ILike{"lti_number": pattern},
			sq.ILike{"transporter_name": pattern},
			sq.ILike{"commodity_description": pattern},
			sq.ILike{"destination_location": pattern},
		})
	}
	if filter.Transporter != "" {
		where = append(where, sq.Eq{"transporter_name": filter.Transporter})
	}
	if filter.From != nil {
		where = append(where, sq.GtOrEq{"lti_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, sq.LtOrEq{"lti_date": *filter.To})
	}
	return where
}

func (r *Repository) collect(ctx context.Context, query string, args ...interface{}) ([]DispatchDB, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// строк у одного LTI обычно немного
	models := make([]DispatchDB, 0, 8)
	for rows.Next() {
		var model DispatchDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, rows.Err()
}
