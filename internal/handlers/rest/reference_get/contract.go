//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reference_get_test
package reference_get

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListReference(ctx context.Context, kind entities.ReferenceKind, filter entities.ReferenceFilter) ([]entities.ReferenceItem, error)
}
