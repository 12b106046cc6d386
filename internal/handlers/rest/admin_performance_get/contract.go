//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_performance_get_test
package admin_performance_get

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
	PerformanceReport(ctx context.Context) (entities.PerformanceReport, error)
}
