//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_print_get_test
package dispatch_print_get

import (
	"context"

	"tracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PrintDispatch(ctx context.Context, number string) ([]byte, error)
}
