//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_users_get_test
package admin_users_get

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
	ListUsers(ctx context.Context) ([]entities.UserProfile, error)
}
