//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/paging"
)

type Repository interface {
	LastDispatchNumber(ctx context.Context, prefix string) (string, error)
	CreateDispatchLines(ctx context.Context, lines []entities.Dispatch) ([]entities.Dispatch, error)
	CopyDispatchLines(ctx context.Context, lines []entities.Dispatch) (int64, error)
	ExistingLineKeys(ctx context.Context, numbers []string) ([]entities.LineKey, error)

	SearchDispatchNumbers(ctx context.Context, fragment string, limit int) ([]entities.DispatchCandidate, error)
	GetDispatchLine(ctx context.Context, number, line string) (*entities.Dispatch, error)
	GetDispatchLines(ctx context.Context, number string) ([]entities.Dispatch, error)
	ListDispatches(ctx context.Context, filter entities.DispatchFilter, page paging.Request) ([]entities.Dispatch, int, error)
	FindDispatches(ctx context.Context, filter entities.DispatchFilter) ([]entities.Dispatch, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
