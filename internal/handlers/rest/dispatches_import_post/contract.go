//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatches_import_post_test
package dispatches_import_post

import (
	"context"
	"io"

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
	ImportDispatches(ctx context.Context, actor string, r io.Reader, filename string) (*entities.UploadResult, error)
}
