//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_utilisation_get_test
package dispatch_utilisation_get

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
	GetLineUtilisation(ctx context.Context, ltiNumber string) ([]entities.LineUtilisation, error)
}
