//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loading_orders_report_get_test
package loading_orders_report_get

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
	LoadingOrderReport(ctx context.Context, filter entities.DeliveryFilter) ([]byte, error)
}
