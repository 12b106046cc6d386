//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_history_get_test
package shipment_history_get

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
	History(ctx context.Context, serial string) ([]entities.ShipmentUpdate, error)
}
