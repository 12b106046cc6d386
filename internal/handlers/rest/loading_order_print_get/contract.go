//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loading_order_print_get_test
package loading_order_print_get

import (
	"context"

	"tracker/internal/service/delivery"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PrintLoadingOrder(ctx context.Context, number, location string) ([]delivery.Document, error)
}
