//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loading_orders_get_test
package loading_orders_get

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
	"tracker/pkg/paging"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListLoadingOrders(ctx context.Context, filter entities.DeliveryFilter, page paging.Request) (paging.Page[entities.Delivery], error)
}
