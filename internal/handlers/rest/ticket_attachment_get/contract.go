//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_attachment_get_test
package ticket_attachment_get

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
	OpenAttachment(ctx context.Context, number string) (io.ReadCloser, *entities.Attachment, error)
}
