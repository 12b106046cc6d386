//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"tracker/internal/entities"
)

type Repository interface {
	// LatestVersionLines строки последней версии отгрузки.
	LatestVersionLines(ctx context.Context, serial string) ([]entities.ShipmentUpdate, error)
	NextVersion(ctx context.Context, serial string) (int, error)
	NextPK(ctx context.Context) (int64, error)
	AppendUpdates(ctx context.Context, updates []entities.ShipmentUpdate) ([]entities.ShipmentUpdate, error)

	History(ctx context.Context, serial string) ([]entities.ShipmentUpdate, error)
	ListUpdates(ctx context.Context) ([]entities.ShipmentUpdate, error)
	SearchSerials(ctx context.Context, fragment string, limit int) ([]entities.ShipmentCandidate, error)

	ExistingPKs(ctx context.Context, pks []int64) ([]int64, error)
	CopyUpdates(ctx context.Context, updates []entities.ShipmentUpdate) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
