//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_lookup_get_test
package dispatch_lookup_get

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
	SearchDispatches(ctx context.Context, fragment string) ([]entities.DispatchCandidate, error)
}
