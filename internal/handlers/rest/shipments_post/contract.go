//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_post_test
package shipments_post

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
	CreateShipment(ctx context.Context, actor string, shipment entities.NewShipment) ([]entities.ShipmentUpdate, error)
}
