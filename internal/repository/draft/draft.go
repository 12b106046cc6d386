package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
	"tracker/internal/service/draft"
)

const selectColumns = `id, kind, owner_id, current_step, completed_steps, state, updated_at, expires_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, d entities.Draft) error {
	model := FromDomain(&d)
	query := `
		INSERT INTO wizard_drafts (id, kind, owner_id, current_step, completed_steps, state, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.querier.Exec(ctx, query,
		model.ID,
		model.Kind,
		model.OwnerID,
		model.CurrentStep,
		model.CompletedSteps,
		model.State,
		model.UpdatedAt,
		model.ExpiresAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("draft %s already exists: %w", model.ID, err)
		}
		return fmt.Errorf("unexpected draft repository create error: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Draft, error) {
	return r.get(ctx, `
		SELECT `+selectColumns+`
		FROM wizard_drafts
		WHERE id = $1 AND owner_id = $2 AND expires_at > NOW()
	`, id, ownerID)
}

func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Draft, error) {
	return r.get(ctx, `
		SELECT `+selectColumns+`
		FROM wizard_drafts
		WHERE id = $1 AND owner_id = $2 AND expires_at > NOW()
		FOR UPDATE
	`, id, ownerID)
}

func (r *Repository) get(ctx context.Context, query string, args ...interface{}) (*entities.Draft, error) {
	var model DraftDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&model.ID,
		&model.Kind,
		&model.OwnerID,
		&model.CurrentStep,
		&model.CompletedSteps,
		&model.State,
		&model.UpdatedAt,
		&model.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, draft.ErrDraftNotFound
		}
		return nil, fmt.Errorf("unexpected draft repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Save(ctx context.Context, d entities.Draft) error {
	model := FromDomain(&d)
	query := `
		UPDATE wizard_drafts
		SET current_step = $3,
			completed_steps = $4,
			state = $5,
			updated_at = $6,
			expires_at = $7
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.querier.Exec(ctx, query,
		model.ID,
		model.OwnerID,
		model.CurrentStep,
		model.CompletedSteps,
		model.State,
		model.UpdatedAt,
		model.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected draft repository save error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return draft.ErrDraftNotFound
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.querier.Exec(ctx, `DELETE FROM wizard_drafts WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected draft repository delete expired error: %w", err)
	}
	return result.RowsAffected(), nil
}
