//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_line_get_test
package dispatch_line_get

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
	GetDispatchLine(ctx context.Context, number, line string) (*entities.Dispatch, error)
}
