//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/paging"
)

type Repository interface {
	DeliveryNumberExists(ctx context.Context, number string) (bool, error)
	CreateDeliveryLines(ctx context.Context, lines []entities.Delivery) ([]entities.Delivery, error)
	GetDeliveryLines(ctx context.Context, number string) ([]entities.Delivery, error)
	ListDeliveries(ctx context.Context, filter entities.DeliveryFilter, page paging.Request) ([]entities.Delivery, int, error)
	FindDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	LineUtilisation(ctx context.Context, ltiNumber string) ([]entities.LineUtilisation, error)
}

// DispatchLookup источник строк LTI для действий select-dispatch и load-lines.
type DispatchLookup interface {
	GetDispatchLine(ctx context.Context, number, line string) (*entities.Dispatch, error)
	GetDispatchLines(ctx context.Context, number string) ([]entities.Dispatch, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
