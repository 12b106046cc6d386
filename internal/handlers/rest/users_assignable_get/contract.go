//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_assignable_get_test
package users_assignable_get

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
	AssignableUsers(ctx context.Context) ([]entities.UserProfile, error)
}
