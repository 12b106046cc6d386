//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_reference_post_test
package admin_reference_post

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
	CreateReference(ctx context.Context, modify entities.ReferenceModify) (*entities.ReferenceItem, error)
}
