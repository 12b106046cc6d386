//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loading_order_get_test
package loading_order_get

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
	GetLoadingOrder(ctx context.Context, number string) ([]entities.Delivery, error)
}
