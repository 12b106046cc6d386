//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reference_test
package reference

import (
	"context"

	"tracker/internal/entities"
)

type Repository interface {
	ListReference(ctx context.Context, kind entities.ReferenceKind, filter entities.ReferenceFilter) ([]entities.ReferenceItem, error)
	CreateReference(ctx context.Context, modify entities.ReferenceModify) (*entities.ReferenceItem, error)
	ReferenceName(ctx context.Context, kind entities.ReferenceKind, id int64) (string, error)
	ListUsers(ctx context.Context) ([]entities.UserProfile, error)
	AssignableUsers(ctx context.Context) ([]entities.UserProfile, error)
}
