//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_test
package draft

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tracker/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, draft entities.Draft) error
	Get(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Draft, error)
	GetForUpdate(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Draft, error)
	Save(ctx context.Context, draft entities.Draft) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
