//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatches_report_get_test
package dispatches_report_get

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
	DispatchReport(ctx context.Context, filter entities.DispatchFilter) ([]byte, error)
}
