//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_updates_post_test
package shipment_updates_post

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
	AppendUpdate(ctx context.Context, channel string, change entities.ShipmentChange) ([]entities.ShipmentUpdate, error)
}
