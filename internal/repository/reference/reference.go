package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
	service "tracker/internal/service/reference"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func schemaFor(kind entities.ReferenceKind) (schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return schema{}, fmt.Errorf("%w: %q", service.ErrUnknownKind, kind)
	}
	return s, nil
}

func (r *Repository) ListReference(
	ctx context.Context,
	kind entities.ReferenceKind,
	filter entities.ReferenceFilter,
) ([]entities.ReferenceItem, error) {
	s, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}

	builder := qb.Select(s.selectColumns()...).From(s.table).OrderBy(s.order)
	switch kind {
	case entities.ReferenceKPIs:
		if filter.DepartmentID != nil {
			builder = builder.Where(sq.Eq{"department_id": *filter.DepartmentID})
		}
	case entities.ReferenceStatuses:
		if filter.Category != nil {
			builder = builder.Where(sq.Eq{"category": *filter.Category})
		}
	case entities.ReferenceServiceProviders:
		if filter.ProviderType != nil {
			builder = builder.Where(sq.Eq{"type": filter.ProviderType.String()})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository list error: %w", err)
	}
	defer rows.Close()

	var models []ReferenceDB
	for rows.Next() {
		var model ReferenceDB
		if err := rows.Scan(s.scanTargets(&model)...); err != nil {
			return nil, fmt.Errorf("unexpected reference repository list error: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected reference repository list error: %w", err)
	}
	return ToDomainList(kind, models), nil
}

func (r *Repository) CreateReference(ctx context.Context, modify entities.ReferenceModify) (*entities.ReferenceItem, error) {
	s, err := schemaFor(modify.Kind)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Insert(s.table).
		Columns(s.columns...).
		Values(s.insertValues(FromDomain(modify))...).
		Suffix("RETURNING " + strings.Join(s.selectColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository create error: %w", err)
	}

	var model ReferenceDB
	if err := r.querier.QueryRow(ctx, query, args...).Scan(s.scanTargets(&model)...); err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, service.ErrConflict
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, service.ErrUnknownDepartment
		}
		return nil, fmt.Errorf("unexpected reference repository create error: %w", err)
	}
	return ToDomain(modify.Kind, &model), nil
}

func (r *Repository) ReferenceName(ctx context.Context, kind entities.ReferenceKind, id int64) (string, error) {
	s, err := schemaFor(kind)
	if err != nil {
		return "", err
	}

	query, args, err := qb.Select("name").From(s.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", fmt.Errorf("unexpected reference repository name error: %w", err)
	}

	var name string
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s %d", service.ErrReferenceNotFound, kind, id)
		}
		return "", fmt.Errorf("unexpected reference repository name error: %w", err)
	}
	return name, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]entities.UserProfile, error) {
	query, args, err := qb.Select(userColumns...).From("user_profiles").OrderBy("username").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository users error: %w", err)
	}

	users, err := r.collectUsers(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository users error: %w", err)
	}
	return users, nil
}

// AssignableUsers пользователи, которым можно назначить тикет.
func (r *Repository) AssignableUsers(ctx context.Context) ([]entities.UserProfile, error) {
	query, args, err := qb.Select(userColumns...).From("get_assignable_users()").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository assignable users error: %w", err)
	}

	users, err := r.collectUsers(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected reference repository assignable users error: %w", err)
	}
	return users, nil
}

func (r *Repository) collectUsers(ctx context.Context, query string, args ...interface{}) ([]entities.UserProfile, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.UserProfile, 0)
	for rows.Next() {
		var model UserProfileDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, err
		}
		users = append(users, UserToDomain(&model))
	}
	return users, rows.Err()
}
